// Package dataset provides a small in-memory tabular dataset: ordered named
// columns and rows of string cells. Cells stay as strings until the
// persistence boundary converts them to database types; an empty cell is the
// missing value.
package dataset

import (
	"fmt"
	"sort"
)

// Dataset holds an ordered set of named columns and their rows.
// Row cells are positional and align with Columns().
type Dataset struct {
	cols []string
	idx  map[string]int
	rows [][]string
}

// New creates an empty dataset with the given column names.
// Duplicate column names are rejected.
func New(cols ...string) (*Dataset, error) {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := idx[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		idx[c] = i
	}
	return &Dataset{
		cols: append([]string(nil), cols...),
		idx:  idx,
	}, nil
}

// MustNew is New for static test fixtures; panics on duplicate columns.
func MustNew(cols ...string) *Dataset {
	ds, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return ds
}

// Columns returns the column names in order. The slice is a copy.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.cols...)
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.cols)
}

// HasColumn reports whether the dataset has a column with the given name.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.idx[name]
	return ok
}

// AppendRow adds a row. The row must have exactly one cell per column.
func (d *Dataset) AppendRow(row []string) error {
	if len(row) != len(d.cols) {
		return fmt.Errorf("row has %d cells, dataset has %d columns", len(row), len(d.cols))
	}
	d.rows = append(d.rows, append([]string(nil), row...))
	return nil
}

// Row returns the cells of row i. The slice is a copy.
func (d *Dataset) Row(i int) []string {
	return append([]string(nil), d.rows[i]...)
}

// Cell returns the value at row i, column name.
// Returns false if the column does not exist.
func (d *Dataset) Cell(i int, name string) (string, bool) {
	pos, ok := d.idx[name]
	if !ok {
		return "", false
	}
	return d.rows[i][pos], true
}

// Column returns all values of the named column in row order.
func (d *Dataset) Column(name string) ([]string, error) {
	pos, ok := d.idx[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	out := make([]string, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[pos]
	}
	return out, nil
}

// RenameColumns renames every column whose name is a key in mapping to the
// mapped value; columns absent from the mapping pass through unchanged.
// The dataset is modified in place. Renaming that would produce duplicate
// column names is rejected and leaves the dataset untouched.
func (d *Dataset) RenameColumns(mapping map[string]string) error {
	renamed := make([]string, len(d.cols))
	seen := make(map[string]int, len(d.cols))
	for i, c := range d.cols {
		name := c
		if to, ok := mapping[c]; ok {
			name = to
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("rename would duplicate column %q", name)
		}
		seen[name] = i
		renamed[i] = name
	}
	d.cols = renamed
	d.idx = seen
	return nil
}

// SetColumn adds a column, or replaces it if a column with that name already
// exists. values must have one entry per row.
func (d *Dataset) SetColumn(name string, values []string) error {
	if len(values) != len(d.rows) {
		return fmt.Errorf("column %q has %d values, dataset has %d rows", name, len(values), len(d.rows))
	}
	if pos, ok := d.idx[name]; ok {
		for i := range d.rows {
			d.rows[i][pos] = values[i]
		}
		return nil
	}
	d.idx[name] = len(d.cols)
	d.cols = append(d.cols, name)
	for i := range d.rows {
		d.rows[i] = append(d.rows[i], values[i])
	}
	return nil
}

// SetConstantColumn sets every row's value for the named column, adding the
// column if it does not exist.
func (d *Dataset) SetConstantColumn(name, value string) {
	values := make([]string, len(d.rows))
	for i := range values {
		values[i] = value
	}
	// Cannot fail: values length always matches.
	_ = d.SetColumn(name, values)
}

// Select returns a new dataset restricted to the given columns, in the given
// order, preserving row order. Cells are copied; the receiver is not aliased.
func (d *Dataset) Select(cols []string) (*Dataset, error) {
	positions := make([]int, len(cols))
	for i, c := range cols {
		pos, ok := d.idx[c]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", c)
		}
		positions[i] = pos
	}
	out, err := New(cols...)
	if err != nil {
		return nil, err
	}
	for _, row := range d.rows {
		cells := make([]string, len(positions))
		for i, pos := range positions {
			cells[i] = row[pos]
		}
		out.rows = append(out.rows, cells)
	}
	return out, nil
}

// Concat returns a new dataset holding the receiver's rows followed by each
// other dataset's rows in argument order. All datasets must expose exactly
// the receiver's columns; use Select first to align them.
func (d *Dataset) Concat(others ...*Dataset) (*Dataset, error) {
	out, err := d.Select(d.cols)
	if err != nil {
		return nil, err
	}
	for _, o := range others {
		if !sameColumns(d.cols, o.cols) {
			return nil, fmt.Errorf("column mismatch: %v vs %v", d.cols, o.cols)
		}
		aligned, err := o.Select(d.cols)
		if err != nil {
			return nil, err
		}
		out.rows = append(out.rows, aligned.rows...)
	}
	return out, nil
}

// sameColumns reports whether a and b contain the same names, ignoring order.
func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
