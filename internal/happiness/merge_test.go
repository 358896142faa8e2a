package happiness

import (
	"errors"
	"strings"
	"testing"

	"happiness-etl/internal/dataset"
)

func fixture(t *testing.T, cols []string, rows ...[]string) *dataset.Dataset {
	t.Helper()
	ds := dataset.MustNew(cols...)
	for _, row := range rows {
		if err := ds.AppendRow(row); err != nil {
			t.Fatal(err)
		}
	}
	return ds
}

func TestNormalizeColumnNames(t *testing.T) {
	byYear := map[int]*dataset.Dataset{
		2015: fixture(t, []string{"Country", "Economy (GDP per Capita)", "Happiness Score", "Family"}),
		2017: fixture(t, []string{"Country", "Economy..GDP.per.Capita.", "Happiness.Score"}),
		2019: fixture(t, []string{"Country or region", "GDP per capita", "Score", "Social support"}),
	}

	got, err := NormalizeColumnNames(byYear)
	if err != nil {
		t.Fatalf("NormalizeColumnNames: %v", err)
	}

	for year, ds := range got {
		for _, col := range ds.Columns() {
			canonical, isSynonym := ColumnSynonyms[col]
			if isSynonym && canonical != col {
				t.Errorf("year %d still exposes raw column %q", year, col)
			}
		}
		for _, want := range []string{"Country", "Economy", "Happiness_Score"} {
			if !ds.HasColumn(want) {
				t.Errorf("year %d missing canonical column %q", year, want)
			}
		}
	}
	if !got[2015].HasColumn("Social_Support") || !got[2019].HasColumn("Social_Support") {
		t.Error("Family / Social support not harmonized to Social_Support")
	}
}

func TestAddYearColumn(t *testing.T) {
	byYear := map[int]*dataset.Dataset{
		2015: fixture(t, []string{"Country"}, []string{"Norway"}, []string{"Chad"}),
		2017: fixture(t, []string{"Country"}, []string{"Ghana"}),
	}

	AddYearColumn(byYear)
	// Idempotent in effect.
	AddYearColumn(byYear)

	for year, ds := range byYear {
		col, err := ds.Column("Year")
		if err != nil {
			t.Fatalf("year %d: %v", year, err)
		}
		for i, v := range col {
			if want := map[int]string{2015: "2015", 2017: "2017"}[year]; v != want {
				t.Errorf("year %d row %d: Year = %q, want %q", year, i, v, want)
			}
		}
	}
}

func TestMapCountryToContinent(t *testing.T) {
	ds := fixture(t, []string{"Country"},
		[]string{"Switzerland"},
		[]string{"Atlantis"},
		[]string{"Chad"},
	)
	if err := MapCountryToContinent(ds); err != nil {
		t.Fatalf("MapCountryToContinent: %v", err)
	}

	if v, _ := ds.Cell(0, "Continent"); v != "Europe" {
		t.Errorf("Switzerland continent = %q, want Europe", v)
	}
	if v, _ := ds.Cell(1, "Continent"); v != "" {
		t.Errorf("unknown country continent = %q, want missing", v)
	}
	if v, _ := ds.Cell(2, "Continent"); v != "Africa" {
		t.Errorf("Chad continent = %q, want Africa", v)
	}
}

func TestMapCountryToContinent_NoCountryColumn(t *testing.T) {
	ds := fixture(t, []string{"Region"})
	if err := MapCountryToContinent(ds); err == nil {
		t.Fatal("expected error for dataset without Country column")
	}
}

func TestConcatCommonColumns(t *testing.T) {
	byYear := map[int]*dataset.Dataset{
		2015: fixture(t, []string{"Country", "Economy", "Happiness_Score", "Standard_Error"},
			[]string{"Switzerland", "1.39651", "7.587", "0.03411"},
			[]string{"Iceland", "1.30232", "7.561", "0.04884"},
		),
		2017: fixture(t, []string{"Country", "Happiness_Score", "Economy", "Whisker_High"},
			[]string{"Norway", "7.537", "1.61646", "7.594"},
		),
	}

	merged, err := ConcatCommonColumns(byYear)
	if err != nil {
		t.Fatalf("ConcatCommonColumns: %v", err)
	}

	// Column set is exactly the intersection, ordered as in the earliest year.
	if got := strings.Join(merged.Columns(), ","); got != "Country,Economy,Happiness_Score" {
		t.Errorf("columns = %s, want Country,Economy,Happiness_Score", got)
	}
	if merged.NumRows() != 3 {
		t.Errorf("rows = %d, want 3", merged.NumRows())
	}
	// Years concatenate in ascending order, row order preserved within a year.
	if v, _ := merged.Cell(0, "Country"); v != "Switzerland" {
		t.Errorf("row 0 = %q", v)
	}
	if v, _ := merged.Cell(2, "Country"); v != "Norway" {
		t.Errorf("row 2 = %q", v)
	}
}

func TestConcatCommonColumns_Empty(t *testing.T) {
	_, err := ConcatCommonColumns(map[int]*dataset.Dataset{})
	if !errors.Is(err, ErrEmptyMerge) {
		t.Fatalf("err = %v, want ErrEmptyMerge", err)
	}
}

func TestConcatCommonColumns_NoSharedColumns(t *testing.T) {
	byYear := map[int]*dataset.Dataset{
		2015: fixture(t, []string{"A"}),
		2016: fixture(t, []string{"B"}),
	}
	if _, err := ConcatCommonColumns(byYear); err == nil {
		t.Fatal("expected error for disjoint column sets")
	}
}

// End-to-end over the two-year scenario: normalize then merge.
func TestNormalizeThenMerge(t *testing.T) {
	byYear := map[int]*dataset.Dataset{
		2015: fixture(t, []string{"Country", "Economy (GDP per Capita)", "Happiness Score"},
			[]string{"Switzerland", "1.39651", "7.587"},
			[]string{"Iceland", "1.30232", "7.561"},
		),
		2017: fixture(t, []string{"Country", "GDP per capita", "Happiness.Score"},
			[]string{"Norway", "1.61646", "7.537"},
		),
	}

	if _, err := NormalizeColumnNames(byYear); err != nil {
		t.Fatal(err)
	}
	merged, err := ConcatCommonColumns(byYear)
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Join(merged.Columns(), ","); got != "Country,Economy,Happiness_Score" {
		t.Errorf("columns = %s", got)
	}
	if merged.NumRows() != 3 {
		t.Errorf("rows = %d, want 3", merged.NumRows())
	}
}

func TestCompareColumnNames(t *testing.T) {
	byYear := map[int]*dataset.Dataset{
		2015: fixture(t, []string{"Country", "Economy"}),
		2017: fixture(t, []string{"Country"}),
	}
	report := CompareColumnNames(byYear)
	if !strings.Contains(report, "2015") || !strings.Contains(report, "Economy") {
		t.Errorf("report missing expected content:\n%s", report)
	}
}
