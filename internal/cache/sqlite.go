package cache

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createCacheTable = `
CREATE TABLE IF NOT EXISTS http_cache (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at TIMESTAMP NOT NULL
)`

// SQLite is a file-backed cache so responses survive restarts, mirroring the
// upstream API's usage guidance of not re-fetching identical ranges.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the cache database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	if _, err := db.Exec(createCacheTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Get returns the cached value for key if present and not expired.
func (s *SQLite) Get(key string) ([]byte, bool) {
	var (
		value     []byte
		expiresAt time.Time
	)

	row := s.db.QueryRow(`SELECT value, expires_at FROM http_cache WHERE key = ?`, key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		return nil, false
	}

	if time.Now().After(expiresAt) {
		return nil, false
	}
	return value, true
}

// Set stores value under key for ttl, replacing any previous entry.
func (s *SQLite) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		_, err := s.db.Exec(`DELETE FROM http_cache WHERE key = ?`, key)
		return err
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO http_cache (key, value, expires_at) VALUES (?, ?, ?)`,
		key, value, time.Now().Add(ttl),
	)
	return err
}

// Prune deletes expired rows and reports how many were dropped.
func (s *SQLite) Prune() int {
	res, err := s.db.Exec(`DELETE FROM http_cache WHERE expires_at <= ?`, time.Now())
	if err != nil {
		return 0
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return int(n)
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
