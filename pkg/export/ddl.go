package export

import (
	"fmt"
	"strings"

	"fdbview/pkg/source"
)

// CreateTableDDL derives the CREATE statement for t: one column per source
// column, in source order, named after the source column and typed per the
// kind mapping. An unrecognized kind fails the statement; columns are never
// dropped silently. Creation is idempotent so an export can target an
// existing store additively.
func CreateTableDDL(t source.Table) (string, error) {
	cols := t.Columns()
	if len(cols) == 0 {
		return "", fmt.Errorf("table %s has no columns", t.Name())
	}

	parts := make([]string, len(cols))
	for i, c := range cols {
		sqlType := c.Kind.SQLType()
		if sqlType == "" {
			return "", fmt.Errorf("column %s: %w (%d)", c.Name, source.ErrUnrecognizedKind, c.Kind)
		}
		parts[i] = fmt.Sprintf("[%s] %s", c.Name, sqlType)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteName(t.Name()), strings.Join(parts, ", ")), nil
}

// InsertDML derives the parameterized insert for t: one positional
// placeholder per column, in column order.
func InsertDML(t source.Table) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns())), ", ")
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteName(t.Name()), placeholders)
}

func quoteName(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
