package common

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Rana718/bankseed/internal/types"
)

// RelationsTable documents declared foreign keys; stores never enforce them.
const RelationsTable = "_relations"

var RelationColumns = []string{"table_name", "column_name", "ref_table", "ref_column"}

// maxPlaceholders keeps multi-row INSERTs under SQLite's default host parameter limit.
const maxPlaceholders = 999

var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateIdentifier rejects names that cannot be used unquoted-safe in DDL.
func ValidateIdentifier(name string) error {
	if !validIdentifier.MatchString(name) {
		return fmt.Errorf("invalid identifier: %q", name)
	}
	return nil
}

// ValidateTable checks the table name and that every row has exactly one cell
// per column. Column names may be any non-empty text; adapters always quote them.
func ValidateTable(t *types.Table) error {
	if err := ValidateIdentifier(t.Name); err != nil {
		return fmt.Errorf("table name: %w", err)
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("table %s has no columns", t.Name)
	}
	seen := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		if col == "" {
			return fmt.Errorf("empty column name in %s", t.Name)
		}
		if seen[col] {
			return fmt.Errorf("duplicate column %s in %s", col, t.Name)
		}
		seen[col] = true
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d of %s has %d cells, expected %d", i+1, t.Name, len(row), len(t.Columns))
		}
	}
	return nil
}

// ForeignKeysOf returns the declared keys owned by table whose column exists in it.
func ForeignKeysOf(t *types.Table, fks []types.ForeignKey) []types.ForeignKey {
	var owned []types.ForeignKey
	for _, fk := range fks {
		if fk.Table == t.Name && t.ColumnIndex(fk.Column) >= 0 {
			owned = append(owned, fk)
		}
	}
	return owned
}

// hasLeadingZero catches identifiers such as phone numbers ("0501234567")
// that would lose digits if stored as numbers.
func hasLeadingZero(s string) bool {
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}

func isInteger(s string) bool {
	if hasLeadingZero(s) || strings.HasPrefix(s, "+") {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isReal(s string) bool {
	if hasLeadingZero(s) || strings.HasPrefix(s, "+") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.ContainsAny(s, "xXpP")
}

// InferColumnKinds picks the narrowest storage kind that holds every non-empty
// cell of each column. Columns with no values are text.
func InferColumnKinds(t *types.Table) []types.ColumnKind {
	kinds := make([]types.ColumnKind, len(t.Columns))
	for c := range t.Columns {
		allInt, allReal, seen := true, true, false
		for _, row := range t.Rows {
			cell := row[c]
			if cell == "" {
				continue
			}
			seen = true
			if allInt && !isInteger(cell) {
				allInt = false
			}
			if allReal && !isReal(cell) {
				allReal = false
			}
			if !allInt && !allReal {
				break
			}
		}
		switch {
		case !seen:
			kinds[c] = types.KindText
		case allInt:
			kinds[c] = types.KindInteger
		case allReal:
			kinds[c] = types.KindReal
		default:
			kinds[c] = types.KindText
		}
	}
	return kinds
}

// ConvertValue turns a cell into a driver value; an empty cell is NULL.
func ConvertValue(cell string, kind types.ColumnKind) interface{} {
	if cell == "" {
		return nil
	}
	switch kind {
	case types.KindInteger:
		if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
			return v
		}
	case types.KindReal:
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			return v
		}
	}
	return cell
}

func ConvertRow(row []string, kinds []types.ColumnKind) []interface{} {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = ConvertValue(cell, kinds[i])
	}
	return values
}

// BatchSize is the number of rows per multi-row INSERT for a table of n columns.
func BatchSize(columns int) int {
	if columns <= 0 {
		return 1
	}
	return max(1, maxPlaceholders/columns)
}

// ValueToString renders a scanned driver value back into a text cell.
func ValueToString(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// RelationRows flattens foreign keys into rows of RelationColumns.
func RelationRows(fks []types.ForeignKey) [][]interface{} {
	rows := make([][]interface{}, len(fks))
	for i, fk := range fks {
		rows[i] = []interface{}{fk.Table, fk.Column, fk.RefTable, fk.RefColumn}
	}
	return rows
}
