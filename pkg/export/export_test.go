package export_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fdbview/pkg/export"
	"fdbview/pkg/source"
	"fdbview/pkg/source/memsource"
	"fdbview/pkg/types"
)

func usersTable() *memsource.Table {
	cols := []source.Column{
		{Name: "id", Kind: types.Int32Kind},
		{Name: "name", Kind: types.TextKind},
	}
	rows := [][]source.Field{
		{memsource.Int32(1), memsource.Text("alice")},
		{memsource.Int32(2), memsource.Text("bob")},
		{memsource.Int32(3), memsource.Text("carol")},
	}
	return memsource.NewTable("Users", cols, rows)
}

func itemsTable() *memsource.Table {
	cols := []source.Column{{Name: "sku", Kind: types.VarCharKind}}
	return memsource.NewTable("Items", cols, nil)
}

func TestCreateTableDDL(t *testing.T) {
	ddl, err := export.CreateTableDDL(usersTable())
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE IF NOT EXISTS "Users" ([id] INTEGER, [name] TEXT)`, ddl)
}

func TestCreateTableDDL_VarCharIsText(t *testing.T) {
	ddl, err := export.CreateTableDDL(itemsTable())
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE IF NOT EXISTS "Items" ([sku] TEXT)`, ddl)
}

func TestCreateTableDDL_UnrecognizedKind(t *testing.T) {
	table := memsource.NewTable("odd",
		[]source.Column{{Name: "c", Kind: types.Kind(77)}}, nil)

	_, err := export.CreateTableDDL(table)
	assert.ErrorIs(t, err, source.ErrUnrecognizedKind)
}

func TestInsertDML(t *testing.T) {
	assert.Equal(t, `INSERT INTO "Users" VALUES (?, ?)`, export.InsertDML(usersTable()))
	assert.Equal(t, `INSERT INTO "Items" VALUES (?)`, export.InsertDML(itemsTable()))
}

func TestExport_Scenario(t *testing.T) {
	db := memsource.New(usersTable(), itemsTable())
	path := filepath.Join(t.TempDir(), "out.sqlite")

	stats, err := export.ToFile(db, path)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Tables)
	assert.Equal(t, 3, stats.Rows)

	target := openTarget(t, path)
	defer target.Close()

	var userCount int
	require.NoError(t, target.QueryRow(`SELECT COUNT(*) FROM "Users"`).Scan(&userCount))
	assert.Equal(t, 3, userCount)

	var itemCount int
	require.NoError(t, target.QueryRow(`SELECT COUNT(*) FROM "Items"`).Scan(&itemCount))
	assert.Equal(t, 0, itemCount)

	rows, err := target.Query(`SELECT id, name FROM "Users" ORDER BY rowid`)
	require.NoError(t, err)
	defer rows.Close()

	expected := []struct {
		id   int64
		name string
	}{{1, "alice"}, {2, "bob"}, {3, "carol"}}

	for _, e := range expected {
		require.True(t, rows.Next())
		var id int64
		var name string
		require.NoError(t, rows.Scan(&id, &name))
		assert.Equal(t, e.id, id)
		assert.Equal(t, e.name, name)
	}
	assert.False(t, rows.Next())
}

func TestExport_TypeMapping(t *testing.T) {
	cols := []source.Column{
		{Name: "none", Kind: types.NothingKind},
		{Name: "i", Kind: types.Int32Kind},
		{Name: "f", Kind: types.Float32Kind},
		{Name: "s", Kind: types.TextKind},
		{Name: "b", Kind: types.BoolKind},
		{Name: "big", Kind: types.Int64Kind},
		{Name: "v", Kind: types.VarCharKind},
	}
	rows := [][]source.Field{{
		memsource.Nothing(),
		memsource.Int32(-9),
		memsource.Float32(0.5),
		memsource.Text("txt"),
		memsource.Bool(true),
		memsource.Int64(1 << 40),
		memsource.VarChar("vc"),
	}}
	db := memsource.New(memsource.NewTable("Mixed", cols, rows))

	path := filepath.Join(t.TempDir(), "mixed.sqlite")
	_, err := export.ToFile(db, path)
	require.NoError(t, err)

	target := openTarget(t, path)
	defer target.Close()

	var ddl string
	require.NoError(t, target.QueryRow(
		`SELECT sql FROM sqlite_master WHERE name = 'Mixed'`).Scan(&ddl))
	assert.Contains(t, ddl, "[i] INTEGER")
	assert.Contains(t, ddl, "[f] REAL")
	assert.Contains(t, ddl, "[s] TEXT")
	assert.Contains(t, ddl, "[b] INTEGER")
	assert.Contains(t, ddl, "[big] INTEGER")
	assert.Contains(t, ddl, "[v] TEXT")

	var (
		none sql.NullString
		i    int64
		f    float64
		s    string
		b    int64
		big  int64
		v    string
	)
	require.NoError(t, target.QueryRow(`SELECT * FROM "Mixed"`).
		Scan(&none, &i, &f, &s, &b, &big, &v))
	assert.False(t, none.Valid, "nothing binds as NULL")
	assert.Equal(t, int64(-9), i)
	assert.Equal(t, 0.5, f)
	assert.Equal(t, "txt", s)
	assert.Equal(t, int64(1), b, "booleans bind as 0/1")
	assert.Equal(t, int64(1<<40), big)
	assert.Equal(t, "vc", v)
}

var errMidway = errors.New("iterator failed midway")

type failingTable struct {
	source.Table
	after int
}

func (f *failingTable) Rows() source.RowIterator {
	return &failingIterator{inner: f.Table.Rows(), after: f.after}
}

type failingIterator struct {
	inner source.RowIterator
	after int
	seen  int
}

func (it *failingIterator) HasNext() (bool, error) { return it.inner.HasNext() }

func (it *failingIterator) Next() ([]source.Field, error) {
	if it.seen >= it.after {
		return nil, errMidway
	}
	it.seen++
	return it.inner.Next()
}

// A failure partway through must roll back everything, including tables
// already written, so a re-run against the same store starts clean.
func TestExport_Atomicity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atomic.sqlite")

	broken := memsource.New(usersTable())
	db := memsource.New(usersTable())

	brokenDB := &failingDatabase{inner: broken, failAfter: 1}
	_, err := export.ToFile(brokenDB, path)
	assert.ErrorIs(t, err, errMidway)

	target := openTarget(t, path)
	var tables int
	require.NoError(t, target.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'`).Scan(&tables))
	assert.Equal(t, 0, tables, "failed export must leave nothing committed")
	target.Close()

	// A fresh export against the same store succeeds fully.
	stats, err := export.ToFile(db, path)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rows)
}

type failingDatabase struct {
	inner     *memsource.Database
	failAfter int
}

func (d *failingDatabase) Tables() []source.Table {
	tables := d.inner.Tables()
	wrapped := make([]source.Table, len(tables))
	for i, t := range tables {
		wrapped[i] = &failingTable{Table: t, after: d.failAfter}
	}
	return wrapped
}

func TestExport_Additive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.sqlite")
	db := memsource.New(usersTable())

	_, err := export.ToFile(db, path)
	require.NoError(t, err)

	// Re-exporting into the same store appends; creation is idempotent.
	_, err = export.ToFile(db, path)
	require.NoError(t, err)

	target := openTarget(t, path)
	defer target.Close()

	var count int
	require.NoError(t, target.QueryRow(`SELECT COUNT(*) FROM "Users"`).Scan(&count))
	assert.Equal(t, 6, count)
}

func openTarget(t *testing.T, path string) *sql.DB {
	t.Helper()
	target, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	return target
}
