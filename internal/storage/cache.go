package storage

import (
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/klauspost/compress/zstd"

	cserrors "codesearch/internal/errors"
)

// DefaultTTL applies when Put is given a non-positive ttl.
const DefaultTTL = 30 * time.Minute

// ResponseCache is an expiring URL → response body store. Bodies are kept
// zstd-compressed and tagged with the source revision they were fetched at.
type ResponseCache struct {
	db     *DB
	logger *slog.Logger
	enc    *zstd.Encoder
	dec    *zstd.Decoder
	now    func() time.Time
}

// CacheStats describes the cache contents.
type CacheStats struct {
	Entries         int64  `json:"entries"`
	Expired         int64  `json:"expired"`
	CompressedBytes int64  `json:"compressedBytes"`
	RawBytes        int64  `json:"rawBytes"`
	Path            string `json:"path"`
}

// Open opens the response cache stored in dir.
func Open(dir string, logger *slog.Logger) (*ResponseCache, error) {
	db, err := OpenDB(dir, logger)
	if err != nil {
		return nil, cserrors.Wrap(cserrors.CacheError, err, "opening response cache in %s", dir)
	}
	c, err := NewResponseCache(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// NewResponseCache wraps an open database.
func NewResponseCache(db *DB) (*ResponseCache, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, cserrors.Wrap(cserrors.CacheError, err, "creating zstd encoder")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, cserrors.Wrap(cserrors.CacheError, err, "creating zstd decoder")
	}
	return &ResponseCache{db: db, logger: db.logger, enc: enc, dec: dec, now: time.Now}, nil
}

// Key returns the stable cache key for url: its SHA-1 in hex.
func Key(url string) string {
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached body for url. Expired entries are deleted and
// reported as misses.
func (c *ResponseCache) Get(url string) ([]byte, bool, error) {
	key := Key(url)
	var (
		body      []byte
		expiresAt int64
	)
	err := c.db.QueryRow(`SELECT body, expires_at FROM responses WHERE key = ?`, key).Scan(&body, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, cserrors.Wrap(cserrors.CacheError, err, "cache lookup failed")
	}

	if c.now().UnixNano() >= expiresAt {
		if _, err := c.db.Exec(`DELETE FROM responses WHERE key = ?`, key); err != nil {
			c.logger.Warn("failed to drop expired cache entry", "key", key, "error", err)
		}
		return nil, false, nil
	}

	raw, err := c.dec.DecodeAll(body, nil)
	if err != nil {
		return nil, false, cserrors.Wrap(cserrors.CacheError, err, "corrupt cache entry %s", key)
	}
	return raw, true, nil
}

// Put stores body for url until ttl elapses.
func (c *ResponseCache) Put(url string, body []byte, revision string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := c.now()
	compressed := c.enc.EncodeAll(body, nil)

	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO responses (key, url, body, raw_size, revision, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, Key(url), url, compressed, len(body), revision, now.Add(ttl).UnixNano(), now.UnixNano())
	if err != nil {
		return cserrors.Wrap(cserrors.CacheError, err, "failed to store response")
	}
	return nil
}

// InvalidateAll removes every entry and returns how many were removed.
func (c *ResponseCache) InvalidateAll() (int64, error) {
	return c.deleteWhere(`1 = 1`)
}

// InvalidateRevision removes the entries fetched at revision.
func (c *ResponseCache) InvalidateRevision(revision string) (int64, error) {
	return c.deleteWhere(`revision = ?`, revision)
}

// CleanupExpired removes entries whose expiry has passed.
func (c *ResponseCache) CleanupExpired() (int64, error) {
	return c.deleteWhere(`expires_at <= ?`, c.now().UnixNano())
}

func (c *ResponseCache) deleteWhere(cond string, args ...interface{}) (int64, error) {
	res, err := c.db.Exec(`DELETE FROM responses WHERE `+cond, args...)
	if err != nil {
		return 0, cserrors.Wrap(cserrors.CacheError, err, "cache delete failed")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, cserrors.Wrap(cserrors.CacheError, err, "cache delete failed")
	}
	if n > 0 {
		c.logger.Debug("Removed cached responses", "count", n, "filter", cond)
	}
	return n, nil
}

// Stats summarizes the cache.
func (c *ResponseCache) Stats() (CacheStats, error) {
	stats := CacheStats{Path: c.db.Path()}
	err := c.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN expires_at <= ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(LENGTH(body)), 0),
		       COALESCE(SUM(raw_size), 0)
		FROM responses
	`, c.now().UnixNano()).Scan(&stats.Entries, &stats.Expired, &stats.CompressedBytes, &stats.RawBytes)
	if err != nil {
		return stats, cserrors.Wrap(cserrors.CacheError, err, "reading cache stats")
	}
	return stats, nil
}

// Close releases the codec and the database.
func (c *ResponseCache) Close() error {
	c.enc.Close()
	c.dec.Close()
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("closing response cache: %w", err)
	}
	return nil
}
