package tabular_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umleo/schedview/pkg/tabular"
)

func TestReadCSV(t *testing.T) {
	in := strings.NewReader(" Subject , Catalog Nbr,Instructor ID\nMATH,101,12345\nSI,206\n")

	table, err := tabular.ReadCSV(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"Subject", "Catalog Nbr", "Instructor ID"}, table.Columns())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "MATH", table.Value(0, "Subject"))
	// Short record is padded with blanks.
	assert.Equal(t, "", table.Value(1, "Instructor ID"))
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := tabular.ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestRenameAndDrop(t *testing.T) {
	table := tabular.New([]string{"Subject Code", "Room Code", "Term Code"})
	table.AppendRow([]string{"MATH", "101", "F25"})

	table.Rename(map[string]string{
		"Subject Code": "Subject",
		"Room Code":    "Room",
		"Not Present":  "Ignored",
	})
	assert.Equal(t, []string{"Subject", "Room", "Term Code"}, table.Columns())

	table.Drop("Term Code", "Also Not Present")
	assert.Equal(t, []string{"Subject", "Room"}, table.Columns())
	assert.Equal(t, "MATH", table.Value(0, "Subject"))
	assert.Equal(t, "101", table.Value(0, "Room"))
}

func TestDropEmptyColumns(t *testing.T) {
	table := tabular.New([]string{"Subject", "Unused", "Room"})
	table.AppendRow([]string{"MATH", "", "101"})
	table.AppendRow([]string{"SI", "  ", "202"})

	table.DropEmptyColumns()
	assert.Equal(t, []string{"Subject", "Room"}, table.Columns())
}

func TestSelectPreservesOrder(t *testing.T) {
	table := tabular.New([]string{"Subject"})
	for _, s := range []string{"MATH", "SI", "MATH", "ECON"} {
		table.AppendRow([]string{s})
	}

	filtered := table.Select(func(i int) bool {
		return table.Value(i, "Subject") == "MATH"
	})

	require.Equal(t, 2, filtered.Len())
	assert.Equal(t, "MATH", filtered.Value(0, "Subject"))
	assert.Equal(t, "MATH", filtered.Value(1, "Subject"))
}

func TestConcatColumnUnion(t *testing.T) {
	a := tabular.New([]string{"UM ID", "Name"})
	a.AppendRow([]string{"1", "Ada"})
	b := tabular.New([]string{"UM ID", "Chapter"})
	b.AppendRow([]string{"2", "Grad"})

	combined := tabular.Concat(a, b)

	assert.Equal(t, []string{"UM ID", "Name", "Chapter"}, combined.Columns())
	require.Equal(t, 2, combined.Len())
	assert.Equal(t, "Ada", combined.Value(0, "Name"))
	assert.Equal(t, "", combined.Value(0, "Chapter"))
	assert.Equal(t, "Grad", combined.Value(1, "Chapter"))
	assert.Equal(t, "", combined.Value(1, "Name"))
}

func TestDistinct(t *testing.T) {
	table := tabular.New([]string{"Subject"})
	for _, s := range []string{"SI", "MATH", "", "SI", " "} {
		table.AppendRow([]string{s})
	}

	assert.Equal(t, []string{"MATH", "SI"}, table.Distinct("Subject"))
	assert.Nil(t, table.Distinct("No Such Column"))
}

func TestAddColumn(t *testing.T) {
	table := tabular.New([]string{"Subject"})
	table.AppendRow([]string{"MATH"})

	require.NoError(t, table.AddColumn("Dues Status", []string{"Paid"}))
	assert.Equal(t, "Paid", table.Value(0, "Dues Status"))

	assert.Error(t, table.AddColumn("Bad", []string{"a", "b"}))
}

func TestRowMap(t *testing.T) {
	table := tabular.New([]string{"Subject", "Room"})
	table.AppendRow([]string{"MATH", "1068"})

	assert.Equal(t, map[string]string{"Subject": "MATH", "Room": "1068"}, table.RowMap(0))
}
