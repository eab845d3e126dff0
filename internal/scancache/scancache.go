// Package scancache persists classfile scan results in SQLite so that
// repeated conversions of overlapping mods skip re-scanning. Entries are
// keyed by the scanner's cache key (the BLAKE3 digest of the class bytes
// joined with the class-name id); the stored value is the scanned item
// encoded as JSON.
package scancache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/masterotaku487-arch/Transformar/core/mod"
	"github.com/masterotaku487-arch/Transformar/internal/fileutil"
	"github.com/masterotaku487-arch/Transformar/internal/sqlite"
)

// DefaultFilename is the cache database filename inside the cache directory.
const DefaultFilename = "scancache.db"

const schema = `
CREATE TABLE IF NOT EXISTS scan_results (
	digest     TEXT PRIMARY KEY,
	item_json  TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Store is a SQLite-backed scan-result store. It implements scan.Store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the scan cache under cacheDir.
func Open(cacheDir string) (*Store, error) {
	if err := fileutil.EnsureDir(cacheDir); err != nil {
		return nil, err
	}
	db, err := sqlite.Open(filepath.Join(cacheDir, DefaultFilename))
	if err != nil {
		return nil, fmt.Errorf("open scan cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init scan cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached item for digest, ok reporting whether it was found.
func (s *Store) Get(digest string) (*mod.Item, bool, error) {
	var itemJSON string
	err := s.db.QueryRow(
		`SELECT item_json FROM scan_results WHERE digest = ?`, digest,
	).Scan(&itemJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("scan cache get: %w", err)
	}

	var item mod.Item
	if err := json.Unmarshal([]byte(itemJSON), &item); err != nil {
		// A corrupt row behaves like a miss; the scanner will overwrite it.
		return nil, false, nil
	}
	return &item, true, nil
}

// Put stores the scanned item under digest, replacing any previous entry.
func (s *Store) Put(digest string, item *mod.Item) error {
	itemJSON, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("scan cache encode: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO scan_results (digest, item_json, created_at) VALUES (?, ?, ?)`,
		digest, string(itemJSON), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("scan cache put: %w", err)
	}
	return nil
}

// Len returns the number of cached entries.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM scan_results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("scan cache count: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
