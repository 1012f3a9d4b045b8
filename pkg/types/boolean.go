package types

// BoolValue represents an owned boolean field value.
// Booleans have no native SQLite type and are bound as 0 or 1.
type BoolValue struct {
	Value bool
}

// NewBoolValue creates a new BoolValue with the specified boolean value.
//
// Parameters:
//   - value: The boolean value to store
//
// Returns:
//   - *BoolValue: A pointer to the newly created BoolValue
func NewBoolValue(value bool) *BoolValue {
	return &BoolValue{Value: value}
}

func (v *BoolValue) Kind() Kind {
	return BoolKind
}

func (v *BoolValue) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

func (v *BoolValue) SQL() any {
	if v.Value {
		return int64(1)
	}
	return int64(0)
}
