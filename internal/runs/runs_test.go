package runs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"happiness-etl/internal/schema"
)

type execCall struct {
	sql  string
	args []any
}

// fakeDB records executed statements with their arguments.
type fakeDB struct {
	execs []execCall
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("fakeDB: Query not supported")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	panic("fakeDB: QueryRow not supported")
}

func (f *fakeDB) CopyFrom(ctx context.Context, table pgx.Identifier, cols []string, src pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("fakeDB: CopyFrom not supported")
}

func TestEnsure_CreatesHistoryTableInPlace(t *testing.T) {
	db := &fakeDB{}
	if err := NewRecorder(db).Ensure(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(db.execs) != 1 {
		t.Fatalf("executed %d statements, want 1", len(db.execs))
	}

	ddl := db.execs[0].sql
	if ddl != schema.RunsTable.CreateIfNotExistsSQL() {
		t.Errorf("Ensure DDL = %s", ddl)
	}
	// Existing history must survive: create must be conditional, never a drop.
	if !strings.HasPrefix(ddl, `CREATE TABLE IF NOT EXISTS "etl_runs"`) {
		t.Errorf("Ensure DDL is not conditional: %s", ddl)
	}
	for _, col := range []string{`"run_id" UUID`, `"status" TEXT NOT NULL`, `"finished_at" TIMESTAMPTZ`, `"error" TEXT`} {
		if !strings.Contains(ddl, col) {
			t.Errorf("Ensure DDL missing %q:\n%s", col, ddl)
		}
	}
}

func TestStart_InsertsRunningRow(t *testing.T) {
	db := &fakeDB{}
	runID := uuid.New()
	if err := NewRecorder(db).Start(context.Background(), runID, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}
	if len(db.execs) != 1 {
		t.Fatalf("executed %d statements, want 1", len(db.execs))
	}

	call := db.execs[0]
	if !strings.Contains(call.sql, `INSERT INTO "etl_runs"`) {
		t.Errorf("Start SQL = %s", call.sql)
	}
	if call.args[0] != runID.String() {
		t.Errorf("run_id arg = %v", call.args[0])
	}
	if call.args[2] != StatusRunning {
		t.Errorf("status arg = %v, want %q", call.args[2], StatusRunning)
	}
}

func TestFinish_StatusAndError(t *testing.T) {
	tests := []struct {
		name       string
		runErr     error
		wantStatus string
		wantErr    string
	}{
		{name: "success", runErr: nil, wantStatus: StatusSucceeded, wantErr: ""},
		{name: "failure", runErr: errors.New("merge stage: no shared columns"), wantStatus: StatusFailed, wantErr: "merge stage: no shared columns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{}
			runID := uuid.New()
			if err := NewRecorder(db).Finish(context.Background(), runID, 3, 450, 12, tt.runErr); err != nil {
				t.Fatal(err)
			}

			call := db.execs[0]
			if !strings.Contains(call.sql, `UPDATE "etl_runs"`) {
				t.Errorf("Finish SQL = %s", call.sql)
			}
			if call.args[0] != runID.String() {
				t.Errorf("run_id arg = %v", call.args[0])
			}
			if call.args[5] != tt.wantStatus {
				t.Errorf("status arg = %v, want %q", call.args[5], tt.wantStatus)
			}
			if call.args[6] != tt.wantErr {
				t.Errorf("error arg = %v, want %q", call.args[6], tt.wantErr)
			}
		})
	}
}
