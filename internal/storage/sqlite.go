package storage

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/featlang/featherkin/pkg/types"
)

var (
	// ErrNotFound is returned when no cached document matches
	ErrNotFound = errors.New("not found")
	// ErrStale is returned when a cached document exists for the path
	// but was parsed from different content
	ErrStale = errors.New("cached document is stale")
)

// Cache persists parsed documents in SQLite so unchanged files can skip
// reparsing. Entries are keyed by source path; the content hash decides
// whether an entry is still valid.
type Cache struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// NewCache opens (or creates) the cache database at dbPath and applies
// pending schema migrations
func NewCache(dbPath string) (*Cache, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}

// Put stores the parsed document for path, replacing any previous entry
func (c *Cache) Put(ctx context.Context, path string, contentHash [32]byte, feature *types.Feature) error {
	doc, err := json.Marshal(feature)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO documents (file_path, content_hash, feature_name, scenario_count, document_json)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(file_path) DO UPDATE SET
			content_hash = excluded.content_hash,
			feature_name = excluded.feature_name,
			scenario_count = excluded.scenario_count,
			document_json = excluded.document_json,
			updated_at = CURRENT_TIMESTAMP`,
		path, contentHash[:], feature.Name, len(feature.Scenarios), string(doc))
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

// Get returns the cached document for path if it was parsed from content
// with the given hash. It returns ErrNotFound when the path has no entry
// and ErrStale when the entry was parsed from different content.
func (c *Cache) Get(ctx context.Context, path string, contentHash [32]byte) (*types.Feature, error) {
	var (
		storedHash []byte
		doc        string
	)
	err := c.db.QueryRowContext(ctx,
		"SELECT content_hash, document_json FROM documents WHERE file_path = ?", path).
		Scan(&storedHash, &doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	if !bytes.Equal(storedHash, contentHash[:]) {
		return nil, ErrStale
	}

	var feature types.Feature
	if err := json.Unmarshal([]byte(doc), &feature); err != nil {
		return nil, fmt.Errorf("failed to decode cached document: %w", err)
	}
	return &feature, nil
}

// Delete removes the entry for path; deleting a missing entry is not an error
func (c *Cache) Delete(ctx context.Context, path string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM documents WHERE file_path = ?", path); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// Stats summarizes the cache contents
type Stats struct {
	Documents int64
	Scenarios int64
}

// GetStats reports how many documents and scenarios the cache holds
func (c *Cache) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(scenario_count), 0) FROM documents").
		Scan(&stats.Documents, &stats.Scenarios)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return &stats, nil
}
