package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"happiness-etl/internal/dataset"
	"happiness-etl/internal/schema"
)

// ReplaceTable drops the table if it exists and recreates it from the schema.
// Destructive by design: the destination is rebuilt wholesale on every run.
// The drop+create pair is not transactional; a crash in between leaves the
// table missing until the next run.
func ReplaceTable(ctx context.Context, db DBTX, table schema.Table) error {
	if _, err := db.Exec(ctx, table.DropSQL()); err != nil {
		return fmt.Errorf("dropping table %s: %w", table.Name, err)
	}
	if _, err := db.Exec(ctx, table.CreateSQL()); err != nil {
		return fmt.Errorf("creating table %s: %w", table.Name, err)
	}
	slog.Info("table replaced", "table", table.Name)
	return nil
}

// BulkInsert replaces the destination table and writes every dataset row via
// the COPY protocol. The dataset must carry a column for every data column of
// the schema; cells are converted (and NOT NULL enforced) before any byte
// reaches the database, so a conversion failure aborts with nothing written.
// Returns the number of rows written.
func BulkInsert(ctx context.Context, db DBTX, table schema.Table, ds *dataset.Dataset) (int64, error) {
	cols := table.DataColumns()
	dbNames := make([]string, len(cols))
	values := make([][]string, len(cols))
	for i, c := range cols {
		dbNames[i] = c.DBName()
		colValues, err := ds.Column(c.Name)
		if err != nil {
			return 0, fmt.Errorf("bulk insert into %s: %w", table.Name, err)
		}
		values[i] = colValues
	}

	rows := make([][]any, ds.NumRows())
	for r := range rows {
		row := make([]any, len(cols))
		for i, c := range cols {
			v, err := CellValue(c, values[i][r])
			if err != nil {
				return 0, fmt.Errorf("bulk insert into %s, row %d: %w", table.Name, r, err)
			}
			row[i] = v
		}
		rows[r] = row
	}

	if err := ReplaceTable(ctx, db, table); err != nil {
		return 0, err
	}

	written, err := db.CopyFrom(ctx, pgx.Identifier{table.Name}, dbNames, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copying into %s: %w", table.Name, err)
	}

	slog.Info("data uploaded", "table", table.Name, "rows", written)
	return written, nil
}

// QueryTable reads the whole table back into a dataset, columns named as in
// the schema, rows ordered by the surrogate key when the table has one.
func QueryTable(ctx context.Context, db DBTX, table schema.Table) (*dataset.Dataset, error) {
	dbNames := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		dbNames[i] = quoteIdent(c.DBName())
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(dbNames, ", "), quoteIdent(table.Name))
	for _, c := range table.Columns {
		if c.Type == schema.FieldSerial {
			query += " ORDER BY " + quoteIdent(c.DBName())
			break
		}
	}

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table.Name, err)
	}
	defer rows.Close()

	ds, err := dataset.New(table.ColumnNames()...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		raw, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("reading %s row: %w", table.Name, err)
		}
		cells := make([]string, len(raw))
		for i, v := range raw {
			cells[i] = formatValue(v)
		}
		if err := ds.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", table.Name, err)
	}

	slog.Info("data queried", "table", table.Name, "rows", ds.NumRows())
	return ds, nil
}

// TableRowCount returns the number of rows in the named table.
func TableRowCount(ctx context.Context, db DBTX, name string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+quoteIdent(name)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting rows in %s: %w", name, err)
	}
	return count, nil
}
