// # internal/graph/schema.go
package graph

import (
	"database/sql"
	"fmt"
)

// migrateSnapshotSchema creates the snapshot tables. Called every time the
// store opens so schema creation is idempotent.
func migrateSnapshotSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS scans (
  scan_id      TEXT    PRIMARY KEY,
  root_path    TEXT    NOT NULL,
  symbol_count INTEGER NOT NULL,
  created_at   INTEGER NOT NULL DEFAULT (unixepoch())
);
CREATE TABLE IF NOT EXISTS symbols (
  scan_id   TEXT    NOT NULL,
  identity  TEXT    NOT NULL,
  name      TEXT    NOT NULL,
  kind      TEXT    NOT NULL,
  file_path TEXT    NOT NULL,
  used      INTEGER NOT NULL,
  deps      TEXT    NOT NULL DEFAULT '[]',
  PRIMARY KEY (scan_id, identity)
);
CREATE INDEX IF NOT EXISTS idx_symbols_scan_file
  ON symbols(scan_id, file_path);
`)
	if err != nil {
		return fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return nil
}
