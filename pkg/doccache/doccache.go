// Package doccache provides read-only access to markup documents via
// memory-mapped files, with a plain read fallback when mapping fails.
//
// Template and component files are read once per build but the same file is
// revisited by the MCP tools and by repeated resolve calls; mapping keeps the
// hot ones cheap without copying them onto the heap.
package doccache

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// Document is one cached file. Data aliases the mapped region (or the
// fallback buffer) and must not be mutated or retained past Cache.Close.
type Document struct {
	Path string
	Data []byte

	mapped mmap.MMap
	file   *os.File
}

// Stats reports cumulative cache behavior.
type Stats struct {
	Hits         int64
	Misses       int64
	MmapFailures int64
}

// Cache memory-maps documents on first access and keeps them mapped until
// Close. Safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	docs   map[string]*Document
	logger *slog.Logger

	statsMu sync.Mutex
	stats   Stats
}

// New creates an empty cache. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		docs:   make(map[string]*Document),
		logger: logger,
	}
}

// Get returns the cached document for path, mapping it on first access.
func (c *Cache) Get(path string) (*Document, error) {
	c.mu.RLock()
	doc, ok := c.docs[path]
	c.mu.RUnlock()
	if ok {
		c.recordHit()
		return doc, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have loaded it while we waited.
	if doc, ok := c.docs[path]; ok {
		c.recordHit()
		return doc, nil
	}

	doc, err := c.load(path)
	if err != nil {
		c.recordMiss()
		return nil, err
	}
	c.docs[path] = doc
	c.recordMiss()
	return doc, nil
}

// ReadFile returns the raw contents of path through the cache.
func (c *Cache) ReadFile(path string) ([]byte, error) {
	doc, err := c.Get(path)
	if err != nil {
		return nil, err
	}
	return doc.Data, nil
}

func (c *Cache) load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	// Zero-length files cannot be mapped.
	if stat.Size() == 0 {
		f.Close()
		return &Document{Path: path}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		c.logger.Warn("mmap failed, reading file directly", "path", path, "error", err)
		c.recordMmapFailure()
		f.Close()

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %q after mmap failure (%v): %w", path, err, readErr)
		}
		return &Document{Path: path, Data: data}, nil
	}

	return &Document{Path: path, Data: m, mapped: m, file: f}, nil
}

// Size returns the number of cached documents.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// Close unmaps every document and clears the cache. Cached Data slices are
// invalid afterwards.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for path, doc := range c.docs {
		if doc.mapped != nil {
			if err := doc.mapped.Unmap(); err != nil {
				c.logger.Warn("failed to unmap document", "path", path, "error", err)
				errs = append(errs, fmt.Errorf("unmap %q: %w", path, err))
			}
		}
		if doc.file != nil {
			if err := doc.file.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %q: %w", path, err))
			}
		}
	}
	c.docs = make(map[string]*Document)

	if len(errs) > 0 {
		return fmt.Errorf("doccache close: %v", errs)
	}
	return nil
}

func (c *Cache) recordHit() {
	c.statsMu.Lock()
	c.stats.Hits++
	c.statsMu.Unlock()
}

func (c *Cache) recordMiss() {
	c.statsMu.Lock()
	c.stats.Misses++
	c.statsMu.Unlock()
}

func (c *Cache) recordMmapFailure() {
	c.statsMu.Lock()
	c.stats.MmapFailures++
	c.statsMu.Unlock()
}
