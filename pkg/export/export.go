// Package export transcribes every table of an open source database into a
// SQLite store. The whole export runs inside a single transaction: either
// all tables and all rows land, or the target is left untouched. Rows are
// streamed through the materializer one at a time, so memory use is
// proportional to column count, never to row count.
package export

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"fdbview/pkg/logging"
	"fdbview/pkg/source"
)

// Stats summarizes one completed export.
type Stats struct {
	Tables  int
	Rows    int
	Elapsed time.Duration
}

// Open opens the SQLite store at path, creating the file if necessary.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
	}
	return db, nil
}

// ToFile exports db into the SQLite file at path.
func ToFile(db source.Database, path string) (Stats, error) {
	target, err := Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer target.Close()

	return Export(db, target)
}

// Export writes every table of db, in catalog order, into target. Any
// failure rolls the transaction back and returns the error; nothing
// partial is committed and the caller stays free to report and retry.
func Export(db source.Database, target *sql.DB) (Stats, error) {
	start := time.Now()

	tx, err := target.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin export transaction: %w", err)
	}

	var stats Stats
	for _, t := range db.Tables() {
		rows, err := exportTable(tx, t)
		if err != nil {
			tx.Rollback()
			return Stats{}, fmt.Errorf("export table %s: %w", t.Name(), err)
		}
		stats.Tables++
		stats.Rows += rows
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit export: %w", err)
	}

	stats.Elapsed = time.Since(start)
	logging.GetLogger().Info("export finished",
		"tables", stats.Tables, "rows", stats.Rows, "elapsed", stats.Elapsed)
	return stats, nil
}

// exportTable creates t's target table and streams every row into the
// prepared insert. Returns the number of rows inserted.
func exportTable(tx *sql.Tx, t source.Table) (int, error) {
	ddl, err := CreateTableDDL(t)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ddl); err != nil {
		return 0, fmt.Errorf("create table: %w", err)
	}

	stmt, err := tx.Prepare(InsertDML(t))
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	cols := t.Columns()
	args := make([]any, len(cols))
	it := t.Rows()
	inserted := 0

	for {
		hasNext, err := it.HasNext()
		if err != nil {
			return inserted, err
		}
		if !hasNext {
			return inserted, nil
		}

		fields, err := it.Next()
		if err != nil {
			return inserted, fmt.Errorf("row %d: %w", inserted, err)
		}
		if len(fields) != len(cols) {
			return inserted, fmt.Errorf("row %d: %d fields for %d columns",
				inserted, len(fields), len(cols))
		}

		for i, f := range fields {
			v, err := source.Materialize(f)
			if err != nil {
				return inserted, fmt.Errorf("row %d: %w", inserted, err)
			}
			args[i] = v.SQL()
		}

		if _, err := stmt.Exec(args...); err != nil {
			return inserted, fmt.Errorf("insert row %d: %w", inserted, err)
		}
		inserted++
	}
}
