package source

import "fdbview/pkg/types"

// Database is a read-only handle over one decoded columnar database file.
// It owns nothing beyond the mapped buffer it was decoded from and is valid
// only while that buffer stays mapped. Everything reachable from it
// (tables, columns, row iterators, fields) borrows from the same buffer.
type Database interface {
	// Tables returns the table catalog in file order.
	Tables() []Table
}

// Table is a named view over one table's columns and rows. It has no
// independent lifetime; it is valid only while its Database is.
type Table interface {
	Name() string

	// Columns returns the column schema in declaration order.
	Columns() []Column

	// RowCount returns the row count the file declares. Display and paging
	// trust the number of rows actually iterable, not this.
	RowCount() int

	// Rows returns a fresh forward-only iterator positioned before the
	// first row. The iterator has no rewind; re-reading means re-scanning.
	Rows() RowIterator
}

// Column is one column's name and declared field kind.
type Column struct {
	Name string
	Kind types.Kind
}

// RowIterator walks a table's rows front to back.
type RowIterator interface {
	// HasNext checks if another row is available without consuming it.
	HasNext() (bool, error)

	// Next returns the next row's fields, one per column in column order.
	// The returned fields are borrowed: text-bearing kinds reference the
	// mapped buffer and are only valid until the next call. Materialize
	// anything that outlives the iteration.
	Next() ([]Field, error)
}

// Field is one borrowed cell value as decoded by the source library.
// Exactly one member is meaningful, selected by Kind. Raw carries the
// undecoded bytes of the text-bearing kinds and aliases the mapped buffer.
type Field struct {
	Kind    types.Kind
	Int32   int32
	Int64   int64
	Float32 float32
	Bool    bool
	Raw     []byte
}
