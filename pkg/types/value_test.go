package types

import "testing"

func TestInt32Value(t *testing.T) {
	v := NewInt32Value(-7)

	if v.Kind() != Int32Kind {
		t.Errorf("Expected kind %v, got %v", Int32Kind, v.Kind())
	}
	if v.String() != "-7" {
		t.Errorf("Expected string -7, got %s", v.String())
	}
	if v.SQL() != int64(-7) {
		t.Errorf("Expected SQL value int64(-7), got %v", v.SQL())
	}
}

func TestInt64Value(t *testing.T) {
	v := NewInt64Value(1 << 40)

	if v.Kind() != Int64Kind {
		t.Errorf("Expected kind %v, got %v", Int64Kind, v.Kind())
	}
	if v.String() != "1099511627776" {
		t.Errorf("Expected string 1099511627776, got %s", v.String())
	}
	if v.SQL() != int64(1<<40) {
		t.Errorf("Expected SQL value int64(1<<40), got %v", v.SQL())
	}
}

func TestFloat32Value(t *testing.T) {
	v := NewFloat32Value(2.5)

	if v.Kind() != Float32Kind {
		t.Errorf("Expected kind %v, got %v", Float32Kind, v.Kind())
	}
	if v.String() != "2.5" {
		t.Errorf("Expected string 2.5, got %s", v.String())
	}
	if v.SQL() != float64(2.5) {
		t.Errorf("Expected SQL value float64(2.5), got %v", v.SQL())
	}
}

func TestBoolValue(t *testing.T) {
	yes := NewBoolValue(true)
	no := NewBoolValue(false)

	if yes.Kind() != BoolKind {
		t.Errorf("Expected kind %v, got %v", BoolKind, yes.Kind())
	}
	if yes.String() != "true" || no.String() != "false" {
		t.Errorf("Expected true/false strings, got %s/%s", yes.String(), no.String())
	}
	if yes.SQL() != int64(1) {
		t.Errorf("Expected true to bind as int64(1), got %v", yes.SQL())
	}
	if no.SQL() != int64(0) {
		t.Errorf("Expected false to bind as int64(0), got %v", no.SQL())
	}
}

func TestTextValue(t *testing.T) {
	v := NewTextValue("hello")

	if v.Kind() != TextKind {
		t.Errorf("Expected kind %v, got %v", TextKind, v.Kind())
	}
	if v.String() != "hello" {
		t.Errorf("Expected string hello, got %s", v.String())
	}
	if v.SQL() != "hello" {
		t.Errorf("Expected SQL value hello, got %v", v.SQL())
	}
}

func TestVarCharValue(t *testing.T) {
	v := NewVarCharValue("world")

	if v.Kind() != VarCharKind {
		t.Errorf("Expected kind %v, got %v", VarCharKind, v.Kind())
	}
	if v.String() != "world" {
		t.Errorf("Expected string world, got %s", v.String())
	}
	if v.SQL() != "world" {
		t.Errorf("Expected SQL value world, got %v", v.SQL())
	}
}

func TestNothingValue(t *testing.T) {
	v := NewNothingValue()

	if v.Kind() != NothingKind {
		t.Errorf("Expected kind %v, got %v", NothingKind, v.Kind())
	}
	if v.String() != "" {
		t.Errorf("Expected empty string, got %q", v.String())
	}
	if v.SQL() != nil {
		t.Errorf("Expected nil SQL value, got %v", v.SQL())
	}
}
