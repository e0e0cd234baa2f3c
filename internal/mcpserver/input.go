package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// sourceInput is a document given either as a file path or inline.
// Exactly one of File or Content must be set.
type sourceInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

func (s sourceInput) empty() bool {
	return s.File == "" && s.Content == ""
}

// read returns the document bytes and a cache key. maxInline bounds inline
// content; zero disables the check.
func (s sourceInput) read(maxInline int) ([]byte, string, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, "", fmt.Errorf("exactly one of file or content must be provided")
	case s.Content != "":
		if maxInline > 0 && len(s.Content) > maxInline {
			return nil, "", fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set RESTSHAPE_MAX_SAMPLE_BYTES to increase",
				len(s.Content), maxInline)
		}
		h := sha256.Sum256([]byte(s.Content))
		return []byte(s.Content), "content:" + hex.EncodeToString(h[:]), nil
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return nil, "", err
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return nil, "", err
		}
		data, err := os.ReadFile(absPath)
		if err != nil {
			return nil, "", err
		}
		return data, fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano()), nil
	default:
		return nil, "", fmt.Errorf("exactly one of file or content must be provided")
	}
}

// cacheEntry holds a cached value with LRU ordering and TTL expiry.
type cacheEntry[T any] struct {
	value     T
	usedAt    time.Time
	expiresAt time.Time
}

// cacheStore is a session-scoped cache of decoded inputs. File inputs are
// keyed by (absolutePath, modTime), content inputs by a SHA-256 hash.
type cacheStore[T any] struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry[T]
	maxSize int
	ttl     time.Duration
}

func newCacheStore[T any](maxSize int, ttl time.Duration) *cacheStore[T] {
	return &cacheStore[T]{
		entries: make(map[string]*cacheEntry[T]),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// get returns a cached value. Expired entries are lazily removed.
func (c *cacheStore[T]) get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, false
	}
	e.usedAt = time.Now()
	return e.value, true
}

// put stores a value, evicting the oldest entry if at capacity.
func (c *cacheStore[T]) put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry[T]{value: value, usedAt: now, expiresAt: now.Add(c.ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictLeastRecent()
	}

	c.entries[key] = entry
}

func (c *cacheStore[T]) evictLeastRecent() {
	var victim string
	var usedAt time.Time
	for k, e := range c.entries {
		if victim == "" || e.usedAt.Before(usedAt) {
			victim, usedAt = k, e.usedAt
		}
	}
	delete(c.entries, victim)
}

// size returns the number of cached entries.
func (c *cacheStore[T]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
