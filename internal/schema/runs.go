package schema

// RunsTable records one row per pipeline run. Unlike ModelTable it is never
// dropped; the runs package creates it with IF NOT EXISTS and appends.
var RunsTable = Table{
	Name: "etl_runs",
	Columns: []Column{
		{Name: "id", Type: FieldSerial},
		{Name: "run_id", Type: FieldUUID},
		{Name: "started_at", Type: FieldTimestamp},
		{Name: "finished_at", Type: FieldTimestamp, Nullable: true},
		{Name: "datasets_loaded", Type: FieldInt},
		{Name: "rows_written", Type: FieldInt},
		{Name: "rows_skipped", Type: FieldInt},
		{Name: "status", Type: FieldText},
		{Name: "error", Type: FieldText, Nullable: true},
	},
}
