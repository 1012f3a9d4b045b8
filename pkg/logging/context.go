package logging

import "log/slog"

// WithTable creates a logger with table context.
// Use this for catalog, paging and export operations.
func WithTable(name string) *slog.Logger {
	return GetLogger().With("table", name)
}

// WithFile creates a logger with source-file context.
// Use this for open/replace operations on the database slot.
func WithFile(path string) *slog.Logger {
	return GetLogger().With("file", path)
}
