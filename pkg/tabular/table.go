// Package tabular implements the loosely-typed string table the campus
// extracts are loaded into. Every cell is a string; numeric meaning is applied
// explicitly at join time via ParseID. Operations that filter or combine
// tables return new tables and preserve row order.
package tabular

import (
	"sort"
	"strings"

	"github.com/umleo/schedview/pkg/errors"
)

// Table is an ordered set of named string columns with string rows.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]string
}

// New creates an empty table with the given columns.
func New(cols []string) *Table {
	t := &Table{
		cols:  make([]string, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	copy(t.cols, cols)
	for i, c := range t.cols {
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
	return t
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the cell at the given row and column, or "" when the column
// does not exist or the row index is out of range.
func (t *Table) Value(row int, col string) string {
	i, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row][i]
}

// Row returns a copy of the cells of one row in column order.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// RowMap returns one row as a column name to cell value map.
func (t *Table) RowMap(i int) map[string]string {
	m := make(map[string]string, len(t.cols))
	for j, c := range t.cols {
		m[c] = t.rows[i][j]
	}
	return m
}

// AppendRow adds a row, padding or truncating to the column count.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.cols))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Rename renames columns in place according to the mapping. Names absent from
// the table are ignored, matching the fixed per-campus rename maps.
func (t *Table) Rename(mapping map[string]string) {
	for i, c := range t.cols {
		if renamed, ok := mapping[c]; ok {
			t.cols[i] = renamed
		}
	}
	t.reindex()
}

// Drop removes the named columns in place. Missing names are ignored.
func (t *Table) Drop(cols ...string) {
	drop := make(map[string]bool, len(cols))
	for _, c := range cols {
		drop[c] = true
	}

	keep := make([]int, 0, len(t.cols))
	for i, c := range t.cols {
		if !drop[c] {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.cols) {
		return
	}

	newCols := make([]string, len(keep))
	for j, i := range keep {
		newCols[j] = t.cols[i]
	}
	for r, row := range t.rows {
		newRow := make([]string, len(keep))
		for j, i := range keep {
			newRow[j] = row[i]
		}
		t.rows[r] = newRow
	}
	t.cols = newCols
	t.reindex()
}

// DropEmptyColumns removes columns whose every cell is blank after trimming.
func (t *Table) DropEmptyColumns() {
	var empty []string
	for i, c := range t.cols {
		allBlank := true
		for _, row := range t.rows {
			if strings.TrimSpace(row[i]) != "" {
				allBlank = false
				break
			}
		}
		if allBlank {
			empty = append(empty, c)
		}
	}
	t.Drop(empty...)
}

// TrimHeaders strips surrounding whitespace from every column name.
func (t *Table) TrimHeaders() {
	for i, c := range t.cols {
		t.cols[i] = strings.TrimSpace(c)
	}
	t.reindex()
}

// Select returns a new table containing the rows for which pred is true,
// preserving input order.
func (t *Table) Select(pred func(row int) bool) *Table {
	out := New(t.cols)
	for i := range t.rows {
		if pred(i) {
			out.AppendRow(t.rows[i])
		}
	}
	return out
}

// AddColumn appends a column with the given values. The value count must
// match the row count.
func (t *Table) AddColumn(name string, values []string) error {
	if len(values) != len(t.rows) {
		return errors.NewValidationError(name, len(values), "column length does not match row count")
	}
	t.cols = append(t.cols, name)
	t.reindex()
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], values[i])
	}
	return nil
}

// Distinct returns the sorted distinct non-blank values of a column.
func (t *Table) Distinct(col string) []string {
	i, ok := t.index[col]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	for _, row := range t.rows {
		v := strings.TrimSpace(row[i])
		if v != "" {
			seen[v] = true
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.cols)
	for _, row := range t.rows {
		out.AppendRow(row)
	}
	return out
}

// Concat combines two tables by column union, matching columns by name.
// Cells for columns a row's source table lacks are blank. Row order is all of
// a's rows followed by all of b's.
func Concat(a, b *Table) *Table {
	cols := a.Columns()
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}
	for _, c := range b.cols {
		if !have[c] {
			cols = append(cols, c)
			have[c] = true
		}
	}

	out := New(cols)
	appendRows := func(src *Table) {
		for i := range src.rows {
			row := make([]string, len(cols))
			for j, c := range cols {
				if k, ok := src.index[c]; ok {
					row[j] = src.rows[i][k]
				}
			}
			out.rows = append(out.rows, row)
		}
	}
	appendRows(a)
	appendRows(b)
	return out
}

// reindex rebuilds the column name index after a structural change.
func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.cols))
	for i, c := range t.cols {
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
}
