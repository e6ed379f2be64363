package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umleo/schedview/internal/cmd/output"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatJSON)

	err := f.Format(&buf, map[string]any{"campus": "flint", "count": 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"campus": "flint"`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatYAML)

	err := f.Format(&buf, map[string]string{"campus": "dearborn"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "campus: dearborn")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	err := f.Format(&buf, output.Data{
		Headers: []string{"SUBJECT"},
		Rows:    [][]string{{"MATH"}, {"SI"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "SUBJECT")
	assert.Contains(t, out, "MATH")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	err := f.Format(&buf, []string{"not", "tabular"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "["))
}

func TestParseFormat(t *testing.T) {
	format, err := output.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, output.FormatJSON, format)

	_, err = output.ParseFormat("xml")
	assert.Error(t, err)
}
