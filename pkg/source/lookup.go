package source

import (
	"errors"
	"fmt"
)

// ErrTableNotFound is returned when a name does not resolve against the
// catalog. Through normal interaction the UI only offers names taken from
// the catalog, so hitting this indicates an upstream consistency fault.
var ErrTableNotFound = errors.New("table not found")

// Lookup resolves a table by exact name. Table names are unique within a
// database; if the file ever carries duplicates the first match wins.
// Linear scan: catalogs hold tens of tables, not millions.
func Lookup(db Database, name string) (Table, error) {
	for _, t := range db.Tables() {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
}
