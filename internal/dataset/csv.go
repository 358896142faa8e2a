package dataset

// csv.go parses CSV files into datasets.
//
// Survey exports come from a mix of tools (Excel, R, Kaggle downloads), so the
// parser tolerates the usual artifacts: UTF-8 BOM from Windows files, Excel
// formula prefixes (="value"), stray surrounding quotes, invalid UTF-8 bytes,
// and ragged trailing cells.

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FromCSV parses CSV data with a header row into a dataset.
// The header names become the column names after CleanCell is applied.
func FromCSV(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && string(lead) == string(utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1 // ragged rows handled below
	cr.LazyQuotes = true    // Excel formula prefixes leave bare quotes

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("csv has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = CleanCell(h)
	}

	ds, err := New(cols...)
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv line %d: %w", line, err)
		}
		if len(record) > len(cols) {
			return nil, fmt.Errorf("csv line %d has %d cells, header has %d columns", line, len(record), len(cols))
		}

		row := make([]string, len(cols))
		empty := true
		for i, cell := range record {
			row[i] = CleanCell(cell)
			if row[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		ds.rows = append(ds.rows, row)
	}

	return ds, nil
}

// CleanCell removes common CSV artifacts from a cell value:
// - trims whitespace
// - removes Excel formula prefix (="...")
// - removes surrounding quotes
// - replaces invalid UTF-8 bytes with '?'
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.ToValidUTF8(s, "?")
}
