// Package dataset provides an in-memory columnar table. The table is a
// transient reconstruction of stored pokemon used only for analysis, it
// is never persisted.
package dataset

import (
	"fmt"
)

// Kind is a storage type of a column.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Names of the columns of the pokemon dataset.
const (
	ColID             = "id"
	ColPokedexNumber  = "pokedex_number"
	ColName           = "name"
	ColHeight         = "height"
	ColWeight         = "weight"
	ColHP             = "hp"
	ColAttack         = "attack"
	ColDefense        = "defense"
	ColSpecialAttack  = "special_attack"
	ColSpecialDefense = "special_defense"
	ColSpeed          = "speed"

	// ColCategories holds the type names of a pokemon, sorted and joined
	// with CategorySep.
	ColCategories = "categories"
)

// CategorySep separates values in the categories column.
const CategorySep = ", "

// Column is a named typed column. Only the slice matching Kind is used.
type Column struct {
	Name   string
	Kind   Kind
	Ints   []int64
	Floats []float64
	Texts  []string
}

// NewIntColumn creates an integer column.
func NewIntColumn(name string, vals []int64) *Column {
	return &Column{Name: name, Kind: KindInt, Ints: vals}
}

// NewFloatColumn creates a floating point column.
func NewFloatColumn(name string, vals []float64) *Column {
	return &Column{Name: name, Kind: KindFloat, Floats: vals}
}

// NewTextColumn creates a text column.
func NewTextColumn(name string, vals []string) *Column {
	return &Column{Name: name, Kind: KindText, Texts: vals}
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	switch c.Kind {
	case KindInt:
		return len(c.Ints)
	case KindFloat:
		return len(c.Floats)
	default:
		return len(c.Texts)
	}
}

// Table is a set of columns of equal length.
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// NewTable creates a table from columns. All columns must have the same
// length and unique names.
func NewTable(cols ...*Column) (*Table, error) {
	res := &Table{
		columns: make([]*Column, 0, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c == nil {
			return nil, ColumnError(fmt.Sprintf("#%d", i), "column is nil")
		}
		if _, ok := res.index[c.Name]; ok {
			return nil, ColumnError(c.Name, "duplicate column name")
		}
		if i == 0 {
			res.rows = c.Len()
		} else if c.Len() != res.rows {
			return nil, ColumnError(c.Name,
				fmt.Sprintf("has %d values, table has %d rows", c.Len(), res.rows))
		}
		res.index[c.Name] = i
		res.columns = append(res.columns, c)
	}
	return res, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return t.rows
}

// Names returns column names in table order.
func (t *Table) Names() []string {
	res := make([]string, len(t.columns))
	for i, c := range t.columns {
		res[i] = c.Name
	}
	return res
}

// Columns returns all columns in table order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column returns a column by name.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, ColumnError(name, "no such column")
	}
	return t.columns[i], nil
}
