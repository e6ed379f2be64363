package campus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umleo/schedview/pkg/campus"
	"github.com/umleo/schedview/pkg/errors"
	"github.com/umleo/schedview/pkg/tabular"
)

func TestByID(t *testing.T) {
	tests := []struct {
		in   string
		want campus.ID
	}{
		{"ann-arbor", campus.AnnArbor},
		{"Ann Arbor", campus.AnnArbor},
		{"aa", campus.AnnArbor},
		{"dearborn", campus.Dearborn},
		{"DEARBORN", campus.Dearborn},
		{"flint", campus.Flint},
		{"fl", campus.Flint},
	}

	for _, tc := range tests {
		c, err := campus.ByID(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, c.ID, "input %q", tc.in)
	}

	_, err := campus.ByID("columbus")
	assert.True(t, errors.IsNotFound(err))
}

func TestParseDay(t *testing.T) {
	day, err := campus.ParseDay("Monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	day, err = campus.ParseDay("thurs")
	require.NoError(t, err)
	assert.Equal(t, time.Thursday, day)

	_, err = campus.ParseDay("Saturday")
	assert.Error(t, err)

	_, err = campus.ParseDay("")
	assert.Error(t, err)
}

func TestAll(t *testing.T) {
	all := campus.All()
	require.Len(t, all, 3)
	assert.Equal(t, campus.AnnArbor, all[0].ID)
	assert.Equal(t, campus.Dearborn, all[1].ID)
	assert.Equal(t, campus.Flint, all[2].ID)
}

func TestAnnArborDayConvention(t *testing.T) {
	c, err := campus.ByID("ann-arbor")
	require.NoError(t, err)

	assert.True(t, c.DayPresent("Y"))
	assert.False(t, c.DayPresent("N"))
	assert.False(t, c.DayPresent(""))
	assert.False(t, c.DayPresent("X"))
}

func TestDearbornDayConvention(t *testing.T) {
	c, err := campus.ByID("dearborn")
	require.NoError(t, err)

	for _, code := range []string{"M", "T", "W", "R", "F", "X"} {
		assert.True(t, c.DayPresent(code), "code %q", code)
	}
	assert.False(t, c.DayPresent(""))
	assert.False(t, c.DayPresent("Y"))
	assert.False(t, c.DayPresent("m"))
}

func TestFlintDayConvention(t *testing.T) {
	c, err := campus.ByID("flint")
	require.NoError(t, err)

	assert.True(t, c.DayPresent("X"))
	assert.False(t, c.DayPresent("Y"))
	assert.False(t, c.DayPresent(""))
}

func TestDearbornNormalize(t *testing.T) {
	c, err := campus.ByID("dearborn")
	require.NoError(t, err)

	raw := tabular.New([]string{" Subject Code ", "Primary Instructor ID", "Monday Indicator", "Unused"})
	raw.AppendRow([]string{"MATH", "12345", "M", ""})

	normalized := c.Normalize(raw)

	assert.Equal(t, []string{"Subject", "Instructor ID", "Monday"}, normalized.Columns())
	// The cached raw table is untouched.
	assert.Equal(t, []string{" Subject Code ", "Primary Instructor ID", "Monday Indicator", "Unused"}, raw.Columns())
}

func TestFlintNormalize(t *testing.T) {
	c, err := campus.ByID("flint")
	require.NoError(t, err)

	raw := tabular.New([]string{"SUBJECT", "CLASS_INST_ID", "MON"})
	raw.AppendRow([]string{"BIO", "54321", "X"})

	normalized := c.Normalize(raw)
	assert.Equal(t, []string{"Subject", "Instructor ID", "Mon"}, normalized.Columns())
}

func TestOnDay(t *testing.T) {
	c, err := campus.ByID("dearborn")
	require.NoError(t, err)

	table := tabular.New([]string{"Subject", "Monday"})
	table.AppendRow([]string{"MATH", "M"})
	table.AppendRow([]string{"SI", ""})
	table.AppendRow([]string{"ECON", "X"})

	monday, err := c.OnDay(table, time.Monday)
	require.NoError(t, err)
	require.Equal(t, 2, monday.Len())
	assert.Equal(t, "MATH", monday.Value(0, "Subject"))
	assert.Equal(t, "ECON", monday.Value(1, "Subject"))
}

func TestOnDayMissingColumn(t *testing.T) {
	c, err := campus.ByID("ann-arbor")
	require.NoError(t, err)

	table := tabular.New([]string{"Subject"})
	table.AppendRow([]string{"MATH"})

	_, err = c.OnDay(table, time.Monday)
	assert.True(t, errors.IsValidationError(err))
}

func TestBySubject(t *testing.T) {
	c, err := campus.ByID("flint")
	require.NoError(t, err)

	table := tabular.New([]string{"Subject"})
	table.AppendRow([]string{"BIO"})
	table.AppendRow([]string{"CHEM"})

	filtered := c.BySubject(table, "BIO")
	require.Equal(t, 1, filtered.Len())

	// Empty subject keeps everything.
	assert.Equal(t, 2, c.BySubject(table, "").Len())
}

func TestAddLocation(t *testing.T) {
	c, err := campus.ByID("dearborn")
	require.NoError(t, err)

	table := tabular.New([]string{"Bldg", "Room"})
	table.AppendRow([]string{"CB", "1068"})
	table.AppendRow([]string{"", "200"})

	lookup := func(code string) string {
		if code == "CB" {
			return "College of Business"
		}
		return code
	}

	require.NoError(t, c.AddLocation(table, lookup))
	assert.Equal(t, "College of Business 1068", table.Value(0, "Location"))
	assert.Equal(t, "200", table.Value(1, "Location"))
}

func TestAddLocationOnlyDearborn(t *testing.T) {
	c, err := campus.ByID("flint")
	require.NoError(t, err)

	table := tabular.New([]string{"Subject"})
	table.AppendRow([]string{"BIO"})

	require.NoError(t, c.AddLocation(table, func(code string) string { return code }))
	assert.False(t, table.HasColumn("Location"))
}
