package source_test

import (
	"errors"
	"testing"

	"fdbview/pkg/source"
	"fdbview/pkg/source/memsource"
	"fdbview/pkg/types"
)

func TestLookup_Found(t *testing.T) {
	db := memsource.New(
		memsource.NewTable("Users", []source.Column{{Name: "id", Kind: types.Int32Kind}}, nil),
		memsource.NewTable("Items", []source.Column{{Name: "id", Kind: types.Int32Kind}}, nil),
	)

	table, err := source.Lookup(db, "Items")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if table.Name() != "Items" {
		t.Errorf("Expected table Items, got %s", table.Name())
	}
}

func TestLookup_NotFound(t *testing.T) {
	db := memsource.New(
		memsource.NewTable("Users", []source.Column{{Name: "id", Kind: types.Int32Kind}}, nil),
	)

	_, err := source.Lookup(db, "Missing")
	if err == nil {
		t.Fatal("Expected error for missing table")
	}
	if !errors.Is(err, source.ErrTableNotFound) {
		t.Errorf("Expected ErrTableNotFound, got %v", err)
	}
}

func TestLookup_ExactMatch(t *testing.T) {
	db := memsource.New(
		memsource.NewTable("Users", []source.Column{{Name: "id", Kind: types.Int32Kind}}, nil),
	)

	if _, err := source.Lookup(db, "users"); !errors.Is(err, source.ErrTableNotFound) {
		t.Errorf("Expected case-sensitive match to fail, got %v", err)
	}
}

func TestLookup_DuplicateFirstWins(t *testing.T) {
	first := memsource.NewTable("Dup", []source.Column{{Name: "a", Kind: types.Int32Kind}}, nil)
	second := memsource.NewTable("Dup", []source.Column{{Name: "b", Kind: types.TextKind}}, nil)
	db := memsource.New(first, second)

	table, err := source.Lookup(db, "Dup")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if table.Columns()[0].Name != "a" {
		t.Errorf("Expected first duplicate to win, got column %s", table.Columns()[0].Name)
	}
}
