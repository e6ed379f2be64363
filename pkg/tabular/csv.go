package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/umleo/schedview/pkg/errors"
)

// ReadCSV reads a delimited-text extract into a table. The first record is
// the header row; headers are trimmed of surrounding whitespace. Records
// shorter than the header are padded with blanks, longer ones truncated —
// the extracts are hand-exported and ragged rows do occur.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("csv", "", "missing header row", err)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", "", err)
	}

	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	t := New(header)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", "", err)
		}
		t.AppendRow(record)
	}
	return t, nil
}

// ReadCSVFile reads a delimited-text extract from disk.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	t, err := ReadCSV(f)
	if err != nil {
		if pe, ok := err.(*errors.ParseError); ok {
			pe.File = path
		}
		return nil, err
	}
	return t, nil
}
