// Package iodataset reads stored pokemon from PostgreSQL into an
// in-memory dataset table.
package iodataset

import (
	"context"
	"log/slog"

	"github.com/gnames/pokedb/pkg/dataset"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/lifecycle"
	"github.com/jackc/pgx/v5"
)

// datasetSQL returns one row per pokemon. Types are joined into a
// single alphabetically sorted value, pokemon without types get an
// empty string.
const datasetSQL = `SELECT p.id, p.pokedex_number, p.name, p.height, p.weight,
  p.hp, p.attack, p.defense, p.special_attack, p.special_defense, p.speed,
  COALESCE(string_agg(DISTINCT t.name, ', ' ORDER BY t.name), '')
    AS categories
  FROM pokemon p
    LEFT JOIN pokemon_types pt ON p.id = pt.pokemon_id
    LEFT JOIN types t ON pt.type_id = t.id
  GROUP BY p.id
  ORDER BY p.pokedex_number`

type row struct {
	ID             int64  `db:"id"`
	PokedexNumber  int64  `db:"pokedex_number"`
	Name           string `db:"name"`
	Height         string `db:"height"`
	Weight         string `db:"weight"`
	HP             int64  `db:"hp"`
	Attack         int64  `db:"attack"`
	Defense        int64  `db:"defense"`
	SpecialAttack  int64  `db:"special_attack"`
	SpecialDefense int64  `db:"special_defense"`
	Speed          int64  `db:"speed"`
	Categories     string `db:"categories"`
}

type builder struct {
	operator db.Operator
}

// New creates a DatasetBuilder reading through the operator's pool.
func New(op db.Operator) lifecycle.DatasetBuilder {
	return &builder{operator: op}
}

// Build runs the dataset query and converts its rows into columns.
func (b *builder) Build(ctx context.Context) (*dataset.Table, error) {
	pool := b.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	rows, err := pool.Query(ctx, datasetSQL)
	if err != nil {
		return nil, DatasetQueryError(err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, DatasetScanError(err)
	}

	res, err := toTable(recs)
	if err != nil {
		return nil, err
	}
	slog.Info("Built dataset", "rows", res.Rows())
	return res, nil
}

func toTable(recs []row) (*dataset.Table, error) {
	n := len(recs)
	var (
		ids      = make([]int64, n)
		numbers  = make([]int64, n)
		names    = make([]string, n)
		heights  = make([]string, n)
		weights  = make([]string, n)
		hp       = make([]int64, n)
		attack   = make([]int64, n)
		defense  = make([]int64, n)
		spAttack = make([]int64, n)
		spDef    = make([]int64, n)
		speed    = make([]int64, n)
		cats     = make([]string, n)
	)
	for i, r := range recs {
		ids[i] = r.ID
		numbers[i] = r.PokedexNumber
		names[i] = r.Name
		heights[i] = r.Height
		weights[i] = r.Weight
		hp[i] = r.HP
		attack[i] = r.Attack
		defense[i] = r.Defense
		spAttack[i] = r.SpecialAttack
		spDef[i] = r.SpecialDefense
		speed[i] = r.Speed
		cats[i] = r.Categories
	}

	return dataset.NewTable(
		dataset.NewIntColumn(dataset.ColID, ids),
		dataset.NewIntColumn(dataset.ColPokedexNumber, numbers),
		dataset.NewTextColumn(dataset.ColName, names),
		dataset.NewTextColumn(dataset.ColHeight, heights),
		dataset.NewTextColumn(dataset.ColWeight, weights),
		dataset.NewIntColumn(dataset.ColHP, hp),
		dataset.NewIntColumn(dataset.ColAttack, attack),
		dataset.NewIntColumn(dataset.ColDefense, defense),
		dataset.NewIntColumn(dataset.ColSpecialAttack, spAttack),
		dataset.NewIntColumn(dataset.ColSpecialDefense, spDef),
		dataset.NewIntColumn(dataset.ColSpeed, speed),
		dataset.NewTextColumn(dataset.ColCategories, cats),
	)
}
