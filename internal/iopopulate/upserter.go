package iopopulate

import (
	"context"
	"errors"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/lifecycle"
	"github.com/gnames/pokedb/pkg/pokemon"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/patrickmn/go-cache"
)

// querier is satisfied by both pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// lookup is a table of unique names with a surrogate id.
type lookup struct {
	table string
	sql   string
}

var (
	typesLookup = lookup{
		table: "types",
		sql: `INSERT INTO types (name) VALUES ($1)
  ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
  RETURNING id`,
	}
	abilitiesLookup = lookup{
		table: "abilities",
		sql: `INSERT INTO abilities (name) VALUES ($1)
  ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
  RETURNING id`,
	}
)

const upsertPokemonSQL = `INSERT INTO pokemon
  (pokedex_number, name, height, weight,
   hp, attack, defense, special_attack, special_defense, speed)
  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
  ON CONFLICT (pokedex_number) DO UPDATE SET
    name = EXCLUDED.name,
    height = EXCLUDED.height,
    weight = EXCLUDED.weight,
    hp = EXCLUDED.hp,
    attack = EXCLUDED.attack,
    defense = EXCLUDED.defense,
    special_attack = EXCLUDED.special_attack,
    special_defense = EXCLUDED.special_defense,
    speed = EXCLUDED.speed
  RETURNING id`

const linkTypeSQL = `INSERT INTO pokemon_types (pokemon_id, type_id)
  VALUES ($1, $2)
  ON CONFLICT DO NOTHING`

const linkAbilitySQL = `INSERT INTO pokemon_abilities
  (pokemon_id, ability_id, is_hidden)
  VALUES ($1, $2, $3)
  ON CONFLICT (pokemon_id, ability_id) DO UPDATE SET
    is_hidden = EXCLUDED.is_hidden`

// upserter implements lifecycle.Upserter.
type upserter struct {
	operator db.Operator

	// ids keeps ids of types and abilities resolved during the run.
	ids *cache.Cache
}

// NewUpserter creates an Upserter working through the operator's pool.
func NewUpserter(op db.Operator) lifecycle.Upserter {
	return &upserter{
		operator: op,
		ids:      cache.New(cache.NoExpiration, 0),
	}
}

// Upsert writes the pokemon row, then its type and ability links in
// one transaction. The pokemon id comes from RETURNING of the upsert
// itself, no second lookup is needed.
func (u *upserter) Upsert(
	ctx context.Context,
	rec pokemon.Record,
) (int, error) {
	pool := u.operator.Pool()
	if pool == nil {
		return 0, NotConnectedError()
	}

	var pokemonID int
	s := rec.Stats
	err := pool.QueryRow(ctx, upsertPokemonSQL,
		rec.PokedexNumber, rec.Name, rec.Height, rec.Weight,
		s.HP, s.Attack, s.Defense, s.SpecialAttack, s.SpecialDefense, s.Speed,
	).Scan(&pokemonID)
	if err != nil {
		return 0, UpsertPokemonError(rec.PokedexNumber, err)
	}

	resolved := make(map[string]int)
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, name := range rec.Types {
			typeID, err := u.resolve(ctx, tx, typesLookup, name, resolved)
			if err != nil {
				return UpsertTypeError(name, err)
			}
			if _, err = tx.Exec(ctx, linkTypeSQL, pokemonID, typeID); err != nil {
				return UpsertLinkError(rec.PokedexNumber, "type", name, err)
			}
		}

		for _, a := range rec.Abilities {
			abilityID, err := u.resolve(ctx, tx, abilitiesLookup, a.Name, resolved)
			if err != nil {
				return UpsertAbilityError(a.Name, err)
			}
			_, err = tx.Exec(ctx, linkAbilitySQL, pokemonID, abilityID, a.Hidden)
			if err != nil {
				return UpsertLinkError(rec.PokedexNumber, "ability", a.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		// cached ids may point to rows removed by a reseed
		u.ids.Flush()
		var gnErr *gn.Error
		if !errors.As(err, &gnErr) {
			err = LinkTransactionError(rec.PokedexNumber, err)
		}
		return pokemonID, err
	}

	// ids created inside a rolled back transaction must not be cached
	for k, v := range resolved {
		u.ids.SetDefault(k, v)
	}
	return pokemonID, nil
}

// Ping checks if the database connection is alive.
func (u *upserter) Ping(ctx context.Context) error {
	return u.operator.Ping(ctx)
}

// resolve returns the id of a name in a lookup table, inserting the
// name if it is new.
func (u *upserter) resolve(
	ctx context.Context,
	q querier,
	l lookup,
	name string,
	resolved map[string]int,
) (int, error) {
	key := cacheKey(l, name)
	if id, ok := resolved[key]; ok {
		return id, nil
	}
	if v, ok := u.ids.Get(key); ok {
		return v.(int), nil
	}

	var id int
	if err := q.QueryRow(ctx, l.sql, name).Scan(&id); err != nil {
		return 0, err
	}
	resolved[key] = id
	return id, nil
}

func cacheKey(l lookup, name string) string {
	return l.table + "|" + name
}
