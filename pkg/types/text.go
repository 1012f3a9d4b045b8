package types

// TextValue represents an owned, fully decoded text field value.
// The string is a copy; it never aliases the source buffer.
type TextValue struct {
	Value string
}

func NewTextValue(value string) *TextValue {
	return &TextValue{Value: value}
}

func (v *TextValue) Kind() Kind {
	return TextKind
}

func (v *TextValue) String() string {
	return v.Value
}

func (v *TextValue) SQL() any {
	return v.Value
}

// VarCharValue represents an owned varchar field value. The source format
// declares varchar separately from text but both decode to a string and
// both map to a TEXT column on export.
type VarCharValue struct {
	Value string
}

func NewVarCharValue(value string) *VarCharValue {
	return &VarCharValue{Value: value}
}

func (v *VarCharValue) Kind() Kind {
	return VarCharKind
}

func (v *VarCharValue) String() string {
	return v.Value
}

func (v *VarCharValue) SQL() any {
	return v.Value
}
