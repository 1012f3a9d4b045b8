package source_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fdbview/pkg/source"
)

func TestOpenFile_MapsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.fdb")
	content := []byte("binary table data")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	m, err := source.OpenFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer m.Close()

	if !bytes.Equal(m.Bytes(), content) {
		t.Errorf("Mapped bytes differ from file content")
	}
	if m.Name() != path {
		t.Errorf("Expected name %s, got %s", path, m.Name())
	}
}

func TestOpenFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fdb")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	m, err := source.OpenFile(path)
	if err != nil {
		t.Fatalf("Empty files should map to no bytes, got error %v", err)
	}
	if len(m.Bytes()) != 0 {
		t.Errorf("Expected empty buffer, got %d bytes", len(m.Bytes()))
	}
	if err := m.Close(); err != nil {
		t.Errorf("Unexpected close error: %v", err)
	}
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := source.OpenFile(filepath.Join(t.TempDir(), "nope.fdb"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
