package types

import "strconv"

// Float32Value represents an owned 32-bit float field value.
// It binds as a float64 because that is the widest form database/sql
// drivers accept; the 32-bit precision of the source is preserved.
type Float32Value struct {
	Value float32
}

func NewFloat32Value(value float32) *Float32Value {
	return &Float32Value{Value: value}
}

func (v *Float32Value) Kind() Kind {
	return Float32Kind
}

// String returns string representation of the float32
func (v *Float32Value) String() string {
	return strconv.FormatFloat(float64(v.Value), 'f', -1, 32)
}

func (v *Float32Value) SQL() any {
	return float64(v.Value)
}
