package types

import "strconv"

// Int32Value represents an owned 32-bit signed integer field value
type Int32Value struct {
	Value int32
}

func NewInt32Value(value int32) *Int32Value {
	return &Int32Value{Value: value}
}

func (v *Int32Value) Kind() Kind {
	return Int32Kind
}

func (v *Int32Value) String() string {
	return strconv.FormatInt(int64(v.Value), 10)
}

func (v *Int32Value) SQL() any {
	return int64(v.Value)
}

// Int64Value represents an owned 64-bit signed integer field value
type Int64Value struct {
	Value int64
}

func NewInt64Value(value int64) *Int64Value {
	return &Int64Value{Value: value}
}

func (v *Int64Value) Kind() Kind {
	return Int64Kind
}

func (v *Int64Value) String() string {
	return strconv.FormatInt(v.Value, 10)
}

func (v *Int64Value) SQL() any {
	return v.Value
}
