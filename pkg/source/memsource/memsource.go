// Package memsource implements the source contracts over plain Go values.
// It backs the demo mode and the test suites; no file or mapping is
// involved, but iteration behaves like the real thing: forward-only, one
// row at a time, borrowed fields.
package memsource

import (
	"fmt"

	"fdbview/pkg/source"
	"fdbview/pkg/types"
)

// Database holds an ordered set of in-memory tables.
type Database struct {
	tables []source.Table
}

func New(tables ...*Table) *Database {
	db := &Database{tables: make([]source.Table, len(tables))}
	for i, t := range tables {
		db.tables[i] = t
	}
	return db
}

func (d *Database) Tables() []source.Table {
	return d.tables
}

// Table is one in-memory table: a name, a column schema and row data.
type Table struct {
	name string
	cols []source.Column
	rows [][]source.Field
}

func NewTable(name string, cols []source.Column, rows [][]source.Field) *Table {
	return &Table{name: name, cols: cols, rows: rows}
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Columns() []source.Column {
	return t.cols
}

func (t *Table) RowCount() int {
	return len(t.rows)
}

func (t *Table) Rows() source.RowIterator {
	return &rowIterator{rows: t.rows}
}

type rowIterator struct {
	rows [][]source.Field
	pos  int
}

func (it *rowIterator) HasNext() (bool, error) {
	return it.pos < len(it.rows), nil
}

func (it *rowIterator) Next() ([]source.Field, error) {
	if it.pos >= len(it.rows) {
		return nil, fmt.Errorf("row iterator exhausted at %d", it.pos)
	}
	row := it.rows[it.pos]
	it.pos++
	return row, nil
}

// Field constructors for building tables by hand.

func Nothing() source.Field {
	return source.Field{Kind: types.NothingKind}
}

func Int32(v int32) source.Field {
	return source.Field{Kind: types.Int32Kind, Int32: v}
}

func Float32(v float32) source.Field {
	return source.Field{Kind: types.Float32Kind, Float32: v}
}

func Text(s string) source.Field {
	return source.Field{Kind: types.TextKind, Raw: []byte(s)}
}

func Bool(v bool) source.Field {
	return source.Field{Kind: types.BoolKind, Bool: v}
}

func Int64(v int64) source.Field {
	return source.Field{Kind: types.Int64Kind, Int64: v}
}

func VarChar(s string) source.Field {
	return source.Field{Kind: types.VarCharKind, Raw: []byte(s)}
}
