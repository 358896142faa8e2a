package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnSummary describes one column of a dataset: a guessed value type,
// how many cells are missing, and how many distinct values appear.
type ColumnSummary struct {
	Name     string
	Type     string // "int", "float", "bool" or "text"
	Nulls    int
	Distinct int
}

// Summary returns a per-column summary in column order.
func (d *Dataset) Summary() []ColumnSummary {
	out := make([]ColumnSummary, 0, len(d.cols))
	for pos, name := range d.cols {
		s := ColumnSummary{Name: name}
		distinct := make(map[string]struct{})
		allInt, allFloat, allBool := true, true, true
		seen := false
		for _, row := range d.rows {
			v := row[pos]
			if v == "" {
				s.Nulls++
				continue
			}
			seen = true
			distinct[v] = struct{}{}
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				allInt = false
			}
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				allFloat = false
			}
			switch strings.ToLower(v) {
			case "true", "false", "t", "f", "0", "1":
			default:
				allBool = false
			}
		}
		s.Distinct = len(distinct)
		switch {
		case !seen:
			s.Type = "text"
		case allBool && !allInt:
			s.Type = "bool"
		case allInt:
			s.Type = "int"
		case allFloat:
			s.Type = "float"
		default:
			s.Type = "text"
		}
		out = append(out, s)
	}
	return out
}

// Shape returns a short "rows x columns" description for logging.
func (d *Dataset) Shape() string {
	return fmt.Sprintf("%d rows x %d columns", len(d.rows), len(d.cols))
}
