package happiness

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"happiness-etl/internal/dataset"
)

// ErrEmptyMerge is returned when ConcatCommonColumns is given no datasets;
// a column intersection over zero sets is undefined.
var ErrEmptyMerge = errors.New("cannot merge zero datasets")

// AddYearColumn sets every row's Year cell to the dataset's map key.
// Datasets are modified in place and the same mapping is returned.
// Reapplying the function yields the same Year values.
func AddYearColumn(byYear map[int]*dataset.Dataset) map[int]*dataset.Dataset {
	for year, ds := range byYear {
		ds.SetConstantColumn("Year", strconv.Itoa(year))
	}
	return byYear
}

// ConcatCommonColumns restricts every dataset to the columns present in all
// of them and concatenates the rows into one dataset. Row order within each
// year is preserved; years are processed in ascending order so output is
// deterministic. The common columns keep the order they have in the earliest
// year's dataset.
func ConcatCommonColumns(byYear map[int]*dataset.Dataset) (*dataset.Dataset, error) {
	if len(byYear) == 0 {
		return nil, ErrEmptyMerge
	}

	years := sortedYears(byYear)

	common := make(map[string]int) // column -> number of datasets carrying it
	for _, year := range years {
		for _, c := range byYear[year].Columns() {
			common[c]++
		}
	}

	// Column order follows the earliest year, filtered to the intersection.
	var cols []string
	for _, c := range byYear[years[0]].Columns() {
		if common[c] == len(years) {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("datasets for years %v share no columns", years)
	}

	parts := make([]*dataset.Dataset, 0, len(years))
	for _, year := range years {
		part, err := byYear[year].Select(cols)
		if err != nil {
			return nil, fmt.Errorf("restricting %d to common columns: %w", year, err)
		}
		parts = append(parts, part)
	}

	return parts[0].Concat(parts[1:]...)
}

// CompareShapes returns a one-line-per-year report of dataset dimensions,
// for debug logging before a merge.
func CompareShapes(byYear map[int]*dataset.Dataset) string {
	var b strings.Builder
	for _, year := range sortedYears(byYear) {
		fmt.Fprintf(&b, "%d: %s\n", year, byYear[year].Shape())
	}
	return b.String()
}

// CompareColumnNames returns a presence matrix of column names across years,
// the quickest way to see why a column fell out of the intersection.
func CompareColumnNames(byYear map[int]*dataset.Dataset) string {
	years := sortedYears(byYear)

	all := make(map[string]struct{})
	for _, year := range years {
		for _, c := range byYear[year].Columns() {
			all[c] = struct{}{}
		}
	}
	names := make([]string, 0, len(all))
	for c := range all {
		names = append(names, c)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("column")
	for _, year := range years {
		fmt.Fprintf(&b, "\t%d", year)
	}
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(name)
		for _, year := range years {
			if byYear[year].HasColumn(name) {
				b.WriteString("\tX")
			} else {
				b.WriteString("\t")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sortedYears(byYear map[int]*dataset.Dataset) []int {
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
