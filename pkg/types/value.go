package types

// Value is an owned, self-contained cell value. Unlike the borrowed fields
// produced by a source row iterator, a Value never references the mapped
// file buffer and stays valid after the database that produced it is closed.
type Value interface {
	// Kind returns the field kind this value carries.
	Kind() Kind

	// String returns the display form of the value.
	String() string

	// SQL returns the value in a form bindable as a database/sql parameter:
	// nil for nothing, int64 for the integer kinds, 0/1 for booleans,
	// float64 for floats, string for the text kinds.
	SQL() any
}
