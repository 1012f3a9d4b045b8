// Package session owns the process-wide "one database open at a time"
// slot and the operation surface the interactive layer drives: open a
// file, list and search tables, page through one table, export everything.
// All operations are synchronous request/response calls from a single
// goroutine; the session takes no locks.
package session

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fdbview/pkg/export"
	"fdbview/pkg/logging"
	"fdbview/pkg/paging"
	"fdbview/pkg/source"
	"fdbview/pkg/types"
)

// ErrNoDatabase is returned by operations that need an open database.
var ErrNoDatabase = errors.New("no database open")

// Page is one materialized window of a table, ready for display. Rows hold
// owned values only; the page stays valid if the database is replaced.
type Page struct {
	Table   string
	Columns []source.Column
	Rows    [][]types.Value
	Index   int // zero-based page index
	Count   int // total pages
}

// Session is the replaceable slot holding the open database and the paging
// state derived from it. Replacing the database invalidates the derived
// state before the new one becomes visible.
type Session struct {
	decoder source.Decoder
	closer  io.Closer
	db      source.Database
	path    string
	pager   *paging.Pager
}

// New returns an empty session. dec decodes a mapped buffer into a
// database; it may be nil, in which case Open fails and only Attach can
// install a database.
func New(dec source.Decoder) *Session {
	return &Session{decoder: dec}
}

// Open maps and decodes the file at path, then swaps it into the slot.
// The new file is fully mapped and decoded before the previous one is
// released, so any failure leaves the session exactly as it was.
func (s *Session) Open(path string) error {
	if s.decoder == nil {
		return errors.New("no source decoder configured")
	}

	m, err := source.OpenFile(path)
	if err != nil {
		return err
	}

	db, err := s.decoder(m.Bytes())
	if err != nil {
		m.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}

	s.install(db, m, path)
	return nil
}

// Attach installs an already-decoded database, bypassing the file layer.
// Demo mode and tests use this; closer may be nil.
func (s *Session) Attach(db source.Database, closer io.Closer, name string) {
	s.install(db, closer, name)
}

func (s *Session) install(db source.Database, closer io.Closer, path string) {
	// Derived views die before the new database becomes visible.
	s.pager = nil

	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			logging.WithFile(s.path).Warn("closing previous database", "error", err)
		}
	}

	s.db = db
	s.closer = closer
	s.path = path
	logging.WithFile(path).Info("database opened", "tables", len(db.Tables()))
}

// HasDatabase reports whether a database is currently open.
func (s *Session) HasDatabase() bool {
	return s.db != nil
}

// Path returns the path of the open database file, if any.
func (s *Session) Path() string {
	return s.path
}

// Tables returns the table names in catalog order.
func (s *Session) Tables() []string {
	if s.db == nil {
		return nil
	}
	tables := s.db.Tables()
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name()
	}
	return names
}

// Search filters the table names by case-insensitive substring match.
// An empty query returns the full catalog.
func (s *Session) Search(query string) []string {
	names := s.Tables()
	if query == "" {
		return names
	}

	q := strings.ToLower(query)
	var matched []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			matched = append(matched, name)
		}
	}
	return matched
}

// Select makes name the paged table and returns its first page. The page
// count comes from a full scan, so it is correct even when the declared
// row count and the iterable rows disagree.
func (s *Session) Select(name string) (*Page, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	t, err := source.Lookup(s.db, name)
	if err != nil {
		return nil, err
	}

	pager, err := paging.NewPager(t)
	if err != nil {
		return nil, err
	}
	s.pager = pager

	return s.fetch()
}

// Next moves to the following page. At the last page it reports
// (nil, false, nil): no movement, no error.
func (s *Session) Next() (*Page, bool, error) {
	if s.pager == nil {
		return nil, false, ErrNoDatabase
	}
	if !s.pager.Next() {
		return nil, false, nil
	}

	page, err := s.fetch()
	if err != nil {
		return nil, false, err
	}
	return page, true, nil
}

// Prev moves to the preceding page, with the same no-op contract at page 0.
func (s *Session) Prev() (*Page, bool, error) {
	if s.pager == nil {
		return nil, false, ErrNoDatabase
	}
	if !s.pager.Prev() {
		return nil, false, nil
	}

	page, err := s.fetch()
	if err != nil {
		return nil, false, err
	}
	return page, true, nil
}

// fetch materializes the pager's current page from a freshly resolved
// table. Nothing is cached across calls; the re-scan keeps the page
// correct however the slot was touched in between.
func (s *Session) fetch() (*Page, error) {
	t, err := source.Lookup(s.db, s.pager.Table())
	if err != nil {
		return nil, err
	}

	start, end := s.pager.Range()
	rows, _, err := paging.ScanRange(t, start, end)
	if err != nil {
		return nil, err
	}

	return &Page{
		Table:   t.Name(),
		Columns: t.Columns(),
		Rows:    rows,
		Index:   s.pager.Page(),
		Count:   s.pager.Pages(),
	}, nil
}

// ExportTo transcribes every table of the open database into the SQLite
// file at path. On failure the target is rolled back and the session
// remains usable.
func (s *Session) ExportTo(path string) (export.Stats, error) {
	if s.db == nil {
		return export.Stats{}, ErrNoDatabase
	}
	return export.ToFile(s.db, path)
}

// DefaultExportName derives the suggested export filename from the open
// source file.
func (s *Session) DefaultExportName() string {
	base := filepath.Base(s.path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "export"
	}
	return base + ".sqlite"
}

// Close releases the mapping and empties the slot.
func (s *Session) Close() error {
	s.pager = nil
	s.db = nil
	s.path = ""

	if s.closer == nil {
		return nil
	}
	closer := s.closer
	s.closer = nil
	return closer.Close()
}
