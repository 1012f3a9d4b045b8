package types

// Kind identifies the declared type of a column or field in the source
// database. The set is closed; anything outside it is reported as
// unrecognized and refused by both display and export.
type Kind int

const (
	NothingKind Kind = iota
	Int32Kind
	Float32Kind
	TextKind
	BoolKind
	Int64Kind
	VarCharKind
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case NothingKind:
		return "NOTHING"
	case Int32Kind:
		return "INTEGER"
	case Float32Kind:
		return "FLOAT"
	case TextKind:
		return "TEXT"
	case BoolKind:
		return "BOOLEAN"
	case Int64Kind:
		return "BIGINT"
	case VarCharKind:
		return "VARCHAR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	return k >= NothingKind && k <= VarCharKind
}

// SQLType returns the SQLite column type a column of this kind maps to.
// NothingKind columns carry no values of their own and are declared TEXT
// so that the column exists and accepts NULL. VarCharKind maps to TEXT,
// matching the value actually bound on insert.
// The empty string is returned for unrecognized kinds.
func (k Kind) SQLType() string {
	switch k {
	case NothingKind:
		return "TEXT"
	case Int32Kind, BoolKind, Int64Kind:
		return "INTEGER"
	case Float32Kind:
		return "REAL"
	case TextKind, VarCharKind:
		return "TEXT"
	default:
		return ""
	}
}
