// # internal/graph/store_test.go
package graph

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"deadexport/internal/parser"
)

func TestSnapshotRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshot.db")

	g := NewGraph()
	g.AddFile(&parser.File{
		Path:         "/p/a.ts",
		Imports:      []parser.ImportRef{{Name: "Dep", Path: "/p/dep.ts"}},
		Declarations: []parser.Declaration{{Name: "Foo", Kind: parser.KindClass, Used: true}},
	})

	store, err := OpenSnapshotStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	scanID, err := store.WriteScan("/p", g)
	require.NoError(t, err)
	require.NotEmpty(t, scanID)

	db, err := sql.Open(sqliteDriverName, "file:"+dbPath)
	require.NoError(t, err)
	defer db.Close()

	var symbolCount int
	require.NoError(t, db.QueryRow(
		`SELECT symbol_count FROM scans WHERE scan_id = ?`, scanID,
	).Scan(&symbolCount))
	require.Equal(t, 2, symbolCount)

	var name, kind, filePath string
	var used int
	require.NoError(t, db.QueryRow(
		`SELECT name, kind, file_path, used FROM symbols WHERE scan_id = ? AND identity = ?`,
		scanID, Identity("/p/a.ts", "Foo"),
	).Scan(&name, &kind, &filePath, &used))
	require.Equal(t, "Foo", name)
	require.Equal(t, "class", kind)
	require.Equal(t, "/p/a.ts", filePath)
	require.Equal(t, 1, used)
}

func TestSnapshotKeepsEarlierScans(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshot.db")

	g := NewGraph()
	g.AddFile(&parser.File{
		Path:         "/p/a.ts",
		Declarations: []parser.Declaration{{Name: "Foo", Kind: parser.KindConst}},
	})

	store, err := OpenSnapshotStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	first, err := store.WriteScan("/p", g)
	require.NoError(t, err)
	second, err := store.WriteScan("/p", g)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	db, err := sql.Open(sqliteDriverName, "file:"+dbPath)
	require.NoError(t, err)
	defer db.Close()

	var scans int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM scans`).Scan(&scans))
	require.Equal(t, 2, scans)
}

func TestOpenSnapshotStoreRejectsEmptyPath(t *testing.T) {
	_, err := OpenSnapshotStore("  ")
	require.Error(t, err)
}

func TestOpenSnapshotStoreRejectsDirectory(t *testing.T) {
	_, err := OpenSnapshotStore(t.TempDir())
	require.Error(t, err)
}
