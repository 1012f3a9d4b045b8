package types

// NothingValue represents an absent field value. It displays as an empty
// cell and binds as SQL NULL.
type NothingValue struct{}

func NewNothingValue() *NothingValue {
	return &NothingValue{}
}

func (v *NothingValue) Kind() Kind {
	return NothingKind
}

func (v *NothingValue) String() string {
	return ""
}

func (v *NothingValue) SQL() any {
	return nil
}
