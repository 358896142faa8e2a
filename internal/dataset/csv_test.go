package dataset

import (
	"strings"
	"testing"
)

func TestFromCSV(t *testing.T) {
	data := "Country,Happiness Score,Economy (GDP per Capita)\n" +
		"Switzerland,7.587,1.39651\n" +
		"Iceland,7.561,1.30232\n"

	ds, err := FromCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	if ds.NumRows() != 2 {
		t.Errorf("NumRows = %d, want 2", ds.NumRows())
	}
	want := []string{"Country", "Happiness Score", "Economy (GDP per Capita)"}
	if strings.Join(ds.Columns(), "|") != strings.Join(want, "|") {
		t.Errorf("columns = %v, want %v", ds.Columns(), want)
	}
	if v, _ := ds.Cell(0, "Country"); v != "Switzerland" {
		t.Errorf("Cell(0, Country) = %q", v)
	}
}

func TestFromCSV_BOMAndArtifacts(t *testing.T) {
	data := "\xEF\xBB\xBFCountry,Score\n" +
		`="Norway",7.537` + "\n" +
		"  Denmark  ,7.522\n" +
		",\n" + // fully empty row is dropped
		"Finland\n" // ragged row: missing trailing cell

	ds, err := FromCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	if got := strings.Join(ds.Columns(), ","); got != "Country,Score" {
		t.Errorf("columns = %s (BOM not stripped?)", got)
	}
	if ds.NumRows() != 3 {
		t.Fatalf("NumRows = %d, want 3", ds.NumRows())
	}
	if v, _ := ds.Cell(0, "Country"); v != "Norway" {
		t.Errorf("formula prefix not cleaned: %q", v)
	}
	if v, _ := ds.Cell(1, "Country"); v != "Denmark" {
		t.Errorf("whitespace not trimmed: %q", v)
	}
	if v, _ := ds.Cell(2, "Score"); v != "" {
		t.Errorf("missing trailing cell = %q, want empty", v)
	}
}

func TestFromCSV_Errors(t *testing.T) {
	if _, err := FromCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := FromCSV(strings.NewReader("a,b\n1,2,3\n")); err == nil {
		t.Error("expected error for row wider than header")
	}
	if _, err := FromCSV(strings.NewReader("a,b,a\n")); err == nil {
		t.Error("expected error for duplicate header names")
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain  ", "plain"},
		{`="12345"`, "12345"},
		{"=SUM", "SUM"},
		{`"quoted"`, "quoted"},
		{"'quoted'", "quoted"},
		{"caf\xffe", "caf?e"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanCell(tt.in); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
