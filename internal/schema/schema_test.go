package schema

import (
	"strings"
	"testing"
)

func TestModelTable_CreateSQL(t *testing.T) {
	sql := ModelTable.CreateSQL()

	for _, want := range []string{
		`CREATE TABLE "ml_model"`,
		`"id" SERIAL PRIMARY KEY`,
		`"social_support" DOUBLE PRECISION NOT NULL`,
		`"year" INTEGER NOT NULL`,
		`"continent_africa" INTEGER NOT NULL`,
		`"predicted_happiness_score" DOUBLE PRECISION NOT NULL`,
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("CreateSQL missing %q:\n%s", want, sql)
		}
	}
}

func TestModelTable_DropSQL(t *testing.T) {
	if got := ModelTable.DropSQL(); got != `DROP TABLE IF EXISTS "ml_model"` {
		t.Errorf("DropSQL = %s", got)
	}
}

func TestModelTable_DataColumns(t *testing.T) {
	data := ModelTable.DataColumns()
	if len(data) != len(ModelTable.Columns)-1 {
		t.Fatalf("DataColumns = %d, want %d", len(data), len(ModelTable.Columns)-1)
	}
	for _, c := range data {
		if c.Type == FieldSerial {
			t.Errorf("serial column %q leaked into DataColumns", c.Name)
		}
		if c.Nullable {
			t.Errorf("model column %q must not be nullable", c.Name)
		}
	}
}

func TestRunsTable_NullableColumns(t *testing.T) {
	sql := RunsTable.CreateSQL()
	if !strings.Contains(sql, `"finished_at" TIMESTAMPTZ`) {
		t.Errorf("CreateSQL missing finished_at:\n%s", sql)
	}
	if strings.Contains(sql, `"finished_at" TIMESTAMPTZ NOT NULL`) {
		t.Error("finished_at must be nullable (set when the run completes)")
	}
	if !strings.Contains(sql, `"run_id" UUID NOT NULL`) {
		t.Errorf("CreateSQL missing run_id:\n%s", sql)
	}
}

func TestCreateIfNotExistsSQL(t *testing.T) {
	sql := RunsTable.CreateIfNotExistsSQL()
	if !strings.HasPrefix(sql, `CREATE TABLE IF NOT EXISTS "etl_runs" (`) {
		t.Errorf("CreateIfNotExistsSQL = %s", sql)
	}
	// Same body as the unconditional form, only the verb differs.
	want := strings.Replace(RunsTable.CreateSQL(), "CREATE TABLE", "CREATE TABLE IF NOT EXISTS", 1)
	if sql != want {
		t.Errorf("CreateIfNotExistsSQL = %s, want %s", sql, want)
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent(`bad"name`); got != `"bad""name"` {
		t.Errorf("quoteIdent = %s", got)
	}
}
