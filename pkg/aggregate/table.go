package aggregate

import (
	"slices"

	"github.com/gnames/gnredlist/pkg/redlist"
)

// Table is the final time-series dataset. Every row has all Columns, a
// column missing from a row's values is null.
type Table struct {
	Columns []string
	Rows    []*redlist.Record
}

// Table aggregates rows and merges them into one table. Columns start
// with BaseColumns, followed by the sorted union of all other columns.
func (a *Aggregator) Table(recs []*redlist.Record) *Table {
	base := a.BaseColumns()
	isBase := make(map[string]struct{}, len(base))
	for _, c := range base {
		isBase[c] = struct{}{}
	}

	res := &Table{Rows: make([]*redlist.Record, 0, len(recs))}
	rest := make(map[string]struct{})
	for _, rec := range recs {
		row := a.Row(rec)
		for _, c := range row.Columns {
			if _, ok := isBase[c]; !ok {
				rest[c] = struct{}{}
			}
		}
		res.Rows = append(res.Rows, row)
	}

	res.Columns = append(base, sortedKeys(rest)...)
	return res
}

// Cell returns the value of a row and column, false means null.
func (t *Table) Cell(row int, col string) (string, bool) {
	return t.Rows[row].Get(col)
}

// Strings converts a row into a slice ordered by Columns. Nulls become
// empty strings, the mask tells which cells are null.
func (t *Table) Strings(row int) ([]string, []bool) {
	vals := make([]string, len(t.Columns))
	nulls := make([]bool, len(t.Columns))
	for i, c := range t.Columns {
		v, ok := t.Rows[row].Get(c)
		vals[i] = v
		nulls[i] = !ok
	}
	return vals, nulls
}

// HasColumn checks if the table contains a column.
func (t *Table) HasColumn(col string) bool {
	return slices.Contains(t.Columns, col)
}
