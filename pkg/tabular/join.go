package tabular

import (
	"strconv"
	"strings"

	"github.com/umleo/schedview/pkg/errors"
)

// ParseID coerces an identifier cell to numeric form. Identifiers arrive with
// inconsistent formatting across extracts: surrounding whitespace, and
// occasionally an integral decimal tail ("12345.0") from spreadsheet
// round-trips. Anything non-integral reports ok=false and is treated as null:
// it never matches in a join and never raises.
func ParseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// LeftJoin joins right onto left by numeric equality of the two key columns.
// Keys are coerced with ParseID; null keys on either side never match. Output
// rows follow left's order exactly, one output row per left row. When several
// right rows share a key, the first wins. Unmatched left rows carry blank
// cells for every right column. Right columns whose names collide with a left
// column are suffixed with "_2" to keep names unambiguous.
func LeftJoin(left, right *Table, leftKey, rightKey string) (*Table, error) {
	if !left.HasColumn(leftKey) {
		return nil, errors.NewValidationError(leftKey, nil, "join key column missing from left table")
	}
	if !right.HasColumn(rightKey) {
		return nil, errors.NewValidationError(rightKey, nil, "join key column missing from right table")
	}

	// Index the right side by numeric key, first occurrence wins.
	rightIdx := make(map[int64]int, right.Len())
	for i := 0; i < right.Len(); i++ {
		key, ok := ParseID(right.Value(i, rightKey))
		if !ok {
			continue
		}
		if _, exists := rightIdx[key]; !exists {
			rightIdx[key] = i
		}
	}

	leftCols := left.Columns()
	haveName := make(map[string]bool, len(leftCols))
	for _, c := range leftCols {
		haveName[c] = true
	}

	rightCols := right.Columns()
	outCols := leftCols
	for _, c := range rightCols {
		name := c
		if haveName[name] {
			name += "_2"
		}
		haveName[name] = true
		outCols = append(outCols, name)
	}

	out := New(outCols)
	blankRight := make([]string, len(rightCols))
	for i := 0; i < left.Len(); i++ {
		row := left.Row(i)
		key, ok := ParseID(left.Value(i, leftKey))
		if ok {
			if j, matched := rightIdx[key]; matched {
				row = append(row, right.Row(j)...)
				out.AppendRow(row)
				continue
			}
		}
		row = append(row, blankRight...)
		out.AppendRow(row)
	}
	return out, nil
}
