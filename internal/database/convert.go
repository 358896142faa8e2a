package database

// convert.go converts dataset string cells to PostgreSQL values at the write
// boundary. Numeric parsing tolerates the artifacts survey spreadsheets
// produce: thousands separators and accounting-style negatives "(1.23)".
// Empty cells become NULL for nullable columns and an error for NOT NULL
// ones; nullability is enforced here, before the database sees the row.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"happiness-etl/internal/schema"
)

// numericRegex validates a numeric string after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CellValue converts one cell to the database value for col.
// Returns nil (NULL) for an empty cell in a nullable column.
func CellValue(col schema.Column, cell string) (any, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		if col.Nullable {
			return nil, nil
		}
		return nil, fmt.Errorf("column %s: empty value for NOT NULL column", col.Name)
	}

	switch col.Type {
	case schema.FieldInt:
		v, err := strconv.ParseInt(cleanNumeric(cell), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("column %s: %q is not an integer", col.Name, cell)
		}
		return int32(v), nil

	case schema.FieldFloat:
		s := cleanNumeric(cell)
		if !numericRegex.MatchString(s) {
			return nil, fmt.Errorf("column %s: %q is not numeric", col.Name, cell)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %q is not numeric", col.Name, cell)
		}
		return v, nil

	case schema.FieldBool:
		switch strings.ToLower(cell) {
		case "true", "t", "yes", "y", "1":
			return true, nil
		case "false", "f", "no", "n", "0":
			return false, nil
		}
		return nil, fmt.Errorf("column %s: %q is not a boolean", col.Name, cell)

	default:
		// Text, timestamps and UUIDs travel as strings; pgx encodes them
		// against the column's wire type.
		return cell, nil
	}
}

// cleanNumeric strips thousands separators and rewrites accounting-style
// negatives "(123.45)" to "-123.45".
func cleanNumeric(s string) string {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.TrimSpace(s[1:len(s)-1])
	}
	return strings.ReplaceAll(s, ",", "")
}

// formatValue renders a scanned database value back into a dataset cell.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case time.Time:
		return val.Format(time.RFC3339)
	case [16]byte: // uuid
		return fmt.Sprintf("%x-%x-%x-%x-%x", val[0:4], val[4:6], val[6:8], val[8:10], val[10:16])
	default:
		return fmt.Sprintf("%v", val)
	}
}
