// Package store caches raw public-api listings in a local SQLite database
// so repeated report runs skip the cargo build. The cache is an
// optimization only: every failure degrades to direct extraction.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	apierrors "apiref/internal/errors"
	"apiref/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS listings (
	crate       TEXT NOT NULL,
	features    TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	run_id      TEXT NOT NULL,
	listing     BLOB NOT NULL,
	created_at  INTEGER NOT NULL,
	PRIMARY KEY (crate, features, fingerprint)
);
`

// Store is a listing cache backed by .apiref/apiref.db.
type Store struct {
	conn    *sql.DB
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	logger  *logging.Logger
}

// Open opens or creates the cache database under the workspace root. Every
// failure carries the CACHE_UNAVAILABLE code so callers can degrade.
func Open(workspaceRoot string, logger *logging.Logger) (*Store, error) {
	dir := filepath.Join(workspaceRoot, ".apiref")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, apierrors.New(apierrors.CacheUnavailable,
			"failed to create .apiref directory", err)
	}

	conn, err := sql.Open("sqlite", filepath.Join(dir, "apiref.db"))
	if err != nil {
		return nil, apierrors.New(apierrors.CacheUnavailable,
			"failed to open cache database", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, apierrors.New(apierrors.CacheUnavailable,
				"failed to set pragma", err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, apierrors.New(apierrors.CacheUnavailable,
			"failed to initialize cache schema", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		_ = conn.Close()
		return nil, apierrors.New(apierrors.CacheUnavailable,
			"failed to create zstd encoder", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		_ = conn.Close()
		return nil, apierrors.New(apierrors.CacheUnavailable,
			"failed to create zstd decoder", err)
	}

	return &Store{
		conn:    conn,
		encoder: encoder,
		decoder: decoder,
		logger:  logger,
	}, nil
}

// Get returns the cached listing for a crate under the given features and
// manifest fingerprint. Cache errors are logged and reported as misses.
func (s *Store) Get(crate, features, fingerprint string) (string, bool) {
	var blob []byte
	err := s.conn.QueryRow(
		"SELECT listing FROM listings WHERE crate = ? AND features = ? AND fingerprint = ?",
		crate, features, fingerprint,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		s.logger.Warn("Cache lookup failed", map[string]interface{}{
			"crate": crate,
			"error": err.Error(),
		})
		return "", false
	}

	raw, err := s.decoder.DecodeAll(blob, nil)
	if err != nil {
		s.logger.Warn("Cached listing is corrupt, ignoring", map[string]interface{}{
			"crate": crate,
			"error": err.Error(),
		})
		return "", false
	}

	return string(raw), true
}

// Put stores a listing, replacing any previous entry for the same key.
func (s *Store) Put(crate, features, fingerprint, raw string) error {
	blob := s.encoder.EncodeAll([]byte(raw), nil)

	_, err := s.conn.Exec(
		`INSERT OR REPLACE INTO listings
			(crate, features, fingerprint, run_id, listing, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		crate, features, fingerprint, uuid.New().String(), blob, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to cache listing for %s: %w", crate, err)
	}

	return nil
}

// Close releases the database connection and compressors.
func (s *Store) Close() error {
	s.encoder.Close()
	s.decoder.Close()
	return s.conn.Close()
}
