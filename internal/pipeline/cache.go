package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// CacheFileName is the digest sidecar written into the output root.
const CacheFileName = ".i18n-cache.json"

// DigestCache tracks per-asset content digests between runs so
// unchanged assets skip rewriting. An in-memory map backed by a JSON
// sidecar file; loading failures degrade to an empty cache.
type DigestCache struct {
	path string

	mu      sync.RWMutex
	entries map[string]string // asset rel path → digest
}

// LoadDigestCache reads the digest sidecar at path. A missing or
// corrupt file yields an empty cache, never an error.
func LoadDigestCache(path string) *DigestCache {
	c := &DigestCache{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Cannot read digest cache, starting empty")
		}
		return c
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Corrupt digest cache, starting empty")
		c.entries = make(map[string]string)
	}
	return c
}

// Unchanged reports whether the stored digest for key equals digest.
func (c *DigestCache) Unchanged(key, digest string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key] == digest
}

// Put records the digest for key.
func (c *DigestCache) Put(key, digest string) {
	c.mu.Lock()
	c.entries[key] = digest
	c.mu.Unlock()
}

// Save writes the cache back to its sidecar file.
func (c *DigestCache) Save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.entries, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode digest cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write digest cache: %w", err)
	}
	return nil
}
