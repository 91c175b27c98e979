package frecency

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite database holding the visit history.
type DB struct {
	*sql.DB
}

// Open creates a new database connection, creating the schema if needed.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	wrapper := &DB{db}
	if err := wrapper.migrate(); err != nil {
		return nil, err
	}

	return wrapper, nil
}

// migrate runs database migrations
func (db *DB) migrate() error {
	migrations := []string{
		// One row per recorded visit; a project's rank is derived from
		// its rows, so reset is a plain delete.
		`CREATE TABLE IF NOT EXISTS visits (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			visited_at INTEGER NOT NULL
		)`,

		// Index for per-project aggregation
		`CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path, visited_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.DB.Close()
}
