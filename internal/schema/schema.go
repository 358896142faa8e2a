// Package schema defines the destination table schemas: typed column
// definitions plus the DDL and column plumbing the persistence layer needs.
package schema

import (
	"fmt"
	"strings"
)

// FieldType is the database type of a column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInt
	FieldFloat
	FieldBool
	FieldTimestamp
	FieldUUID
	FieldSerial // auto-generated integer surrogate key
)

// Column defines one destination-table column. Name is the dataset-facing
// (canonical) column name; the database column is its lower-cased form.
type Column struct {
	Name     string
	Type     FieldType
	Nullable bool
}

// DBName returns the database identifier for the column.
func (c Column) DBName() string {
	return strings.ToLower(c.Name)
}

// SQLType returns the PostgreSQL type for the column.
func (c Column) SQLType() string {
	switch c.Type {
	case FieldInt:
		return "INTEGER"
	case FieldFloat:
		return "DOUBLE PRECISION"
	case FieldBool:
		return "BOOLEAN"
	case FieldTimestamp:
		return "TIMESTAMPTZ"
	case FieldUUID:
		return "UUID"
	case FieldSerial:
		return "SERIAL"
	default:
		return "TEXT"
	}
}

// Table is a named table bound to an ordered set of columns.
type Table struct {
	Name    string
	Columns []Column
}

// CreateSQL renders the CREATE TABLE statement.
func (t Table) CreateSQL() string {
	return t.createSQL("CREATE TABLE")
}

// CreateIfNotExistsSQL renders CREATE TABLE IF NOT EXISTS, for tables that
// persist across runs instead of being replaced.
func (t Table) CreateIfNotExistsSQL() string {
	return t.createSQL("CREATE TABLE IF NOT EXISTS")
}

func (t Table) createSQL(verb string) string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := fmt.Sprintf("%s %s", quoteIdent(c.DBName()), c.SQLType())
		if c.Type == FieldSerial {
			def += " PRIMARY KEY"
		} else if !c.Nullable {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("%s %s (%s)", verb, quoteIdent(t.Name), strings.Join(defs, ", "))
}

// DropSQL renders the DROP TABLE IF EXISTS statement.
func (t Table) DropSQL() string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(t.Name))
}

// DataColumns returns the columns the pipeline writes, i.e. everything except
// auto-generated serial keys.
func (t Table) DataColumns() []Column {
	out := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Type != FieldSerial {
			out = append(out, c)
		}
	}
	return out
}

// ColumnNames returns the dataset-facing names of all columns, in order.
func (t Table) ColumnNames() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// quoteIdent quotes a PostgreSQL identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
