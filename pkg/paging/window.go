// Package paging turns a table's forward-only row iterator into the
// fixed-size pages the viewer displays. The source format has no cursor or
// row index, so random access is presented to the caller but implemented
// as a re-scan from the start of the table; reaching page k costs
// k*PageSize skipped rows. Pages hold owned values only.
package paging

import (
	"fmt"

	"fdbview/pkg/source"
	"fdbview/pkg/types"
)

// PageSize is the number of rows in one display page.
const PageSize = 1024

// ScanRange scans t from its first row, skips rows before start and
// materializes the rows in [start, end). It stops at end or when the
// iterator is exhausted, whichever comes first, and returns the number of
// rows scanned including skipped ones so the caller can detect
// end-of-table. Every row is checked against the column schema; a width
// mismatch or an unrecognized column kind fails the whole scan.
func ScanRange(t source.Table, start, end int) ([][]types.Value, int, error) {
	if start < 0 || end < start {
		return nil, 0, fmt.Errorf("invalid row range [%d, %d)", start, end)
	}

	cols := t.Columns()
	if err := validateColumns(t.Name(), cols); err != nil {
		return nil, 0, err
	}

	var grid [][]types.Value
	it := t.Rows()
	scanned := 0

	for scanned < end {
		hasNext, err := it.HasNext()
		if err != nil {
			return nil, scanned, fmt.Errorf("table %s: %w", t.Name(), err)
		}
		if !hasNext {
			break
		}

		fields, err := it.Next()
		if err != nil {
			return nil, scanned, fmt.Errorf("table %s row %d: %w", t.Name(), scanned, err)
		}
		if len(fields) != len(cols) {
			return nil, scanned, fmt.Errorf("table %s row %d: %d fields for %d columns",
				t.Name(), scanned, len(fields), len(cols))
		}

		if scanned >= start {
			row, err := source.MaterializeRow(fields)
			if err != nil {
				return nil, scanned, fmt.Errorf("table %s row %d: %w", t.Name(), scanned, err)
			}
			grid = append(grid, row)
		}
		scanned++
	}

	return grid, scanned, nil
}

// CountRows walks the whole table and returns the number of iterable rows.
// The declared row count is not trusted for display; this pass is.
func CountRows(t source.Table) (int, error) {
	cols := t.Columns()
	it := t.Rows()
	n := 0

	for {
		hasNext, err := it.HasNext()
		if err != nil {
			return n, fmt.Errorf("table %s: %w", t.Name(), err)
		}
		if !hasNext {
			return n, nil
		}

		fields, err := it.Next()
		if err != nil {
			return n, fmt.Errorf("table %s row %d: %w", t.Name(), n, err)
		}
		if len(fields) != len(cols) {
			return n, fmt.Errorf("table %s row %d: %d fields for %d columns",
				t.Name(), n, len(fields), len(cols))
		}
		n++
	}
}

func validateColumns(table string, cols []source.Column) error {
	for _, c := range cols {
		if !c.Kind.Valid() {
			return fmt.Errorf("table %s column %s: %w (%d)",
				table, c.Name, source.ErrUnrecognizedKind, c.Kind)
		}
	}
	return nil
}
