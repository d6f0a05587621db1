package graph

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// SnapshotStore persists the final symbol mapping of a scan to sqlite so
// other tooling can query results. It is strictly an output sink: the
// in-memory mapping is rebuilt from scratch on every run regardless.
type SnapshotStore struct {
	db *sql.DB
}

func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("snapshot store path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("snapshot store path %q is a directory, expected file", cleanPath)
	}

	dir := filepath.Dir(cleanPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot store directory %q: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cleanPath)
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store %q: %w", cleanPath, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping snapshot store %q: %w", cleanPath, err)
	}

	if err := migrateSnapshotSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SnapshotStore{db: db}, nil
}

// WriteScan stores every symbol of g under a fresh scan id, which it returns.
func (s *SnapshotStore) WriteScan(rootPath string, g *Graph) (string, error) {
	scanID := uuid.NewString()
	symbols := g.All()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO scans (scan_id, root_path, symbol_count) VALUES (?, ?, ?)`,
		scanID, rootPath, len(symbols),
	); err != nil {
		return "", fmt.Errorf("insert scan row: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO symbols (scan_id, identity, name, kind, file_path, used, deps)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare symbol insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, sym := range symbols {
		deps, err := json.Marshal(sym.Deps)
		if err != nil {
			return "", fmt.Errorf("encode deps for %s: %w", sym.ID, err)
		}
		used := 0
		if sym.Used {
			used = 1
		}
		if _, err := stmt.Exec(
			scanID, sym.ID, sym.Name, sym.Kind.String(), sym.FilePath, used, string(deps),
		); err != nil {
			return "", fmt.Errorf("insert symbol %s: %w", sym.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit snapshot: %w", err)
	}
	return scanID, nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
