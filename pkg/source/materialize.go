package source

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fdbview/pkg/types"
)

// ErrUnrecognizedKind marks a field or column whose declared kind is
// outside the known set. Neither display nor export can pick a type for
// it, so the whole operation on that table fails rather than dropping
// the column.
var ErrUnrecognizedKind = errors.New("unrecognized field kind")

// Materialize copies a borrowed field into an owned value with the same
// tagged shape. Text-bearing kinds are fully decoded into fresh strings;
// nothing retains a reference into the mapped buffer, so the value stays
// valid after the database is closed.
func Materialize(f Field) (types.Value, error) {
	switch f.Kind {
	case types.NothingKind:
		return types.NewNothingValue(), nil
	case types.Int32Kind:
		return types.NewInt32Value(f.Int32), nil
	case types.Float32Kind:
		return types.NewFloat32Value(f.Float32), nil
	case types.TextKind:
		return types.NewTextValue(decodeText(f.Raw)), nil
	case types.BoolKind:
		return types.NewBoolValue(f.Bool), nil
	case types.Int64Kind:
		return types.NewInt64Value(f.Int64), nil
	case types.VarCharKind:
		return types.NewVarCharValue(decodeText(f.Raw)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedKind, f.Kind)
	}
}

// MaterializeRow materializes every field of one row in order.
func MaterializeRow(fields []Field) ([]types.Value, error) {
	row := make([]types.Value, len(fields))
	for i, f := range fields {
		v, err := Materialize(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		row[i] = v
	}
	return row, nil
}

// decodeText copies raw bytes into an owned string. Malformed UTF-8 is
// replaced with U+FFFD instead of failing, so a partially corrupt file
// still displays and exports.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "�")
}
