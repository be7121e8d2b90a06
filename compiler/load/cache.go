package load

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Cache memoizes per-file parse results across repeated loads of the same
// directory. Entries are keyed by path and invalidated by size and
// modification time, so a watch loop only re-parses the files that
// actually changed.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	size    int64
	modTime time.Time
	schemas []*Schema
	err     error
}

// NewCache returns an empty parse cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// LoadDir behaves like the package-level LoadDir but serves unchanged
// files from the cache. Stale entries for removed files are dropped.
func (c *Cache) LoadDir(dir string) ([]*Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("derivepy: read schema dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool, len(names))
	var schemas []*Schema
	for _, name := range names {
		path := filepath.Join(dir, name)
		seen[path] = true
		fileSchemas, err := c.loadFile(path)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, fileSchemas...)
	}
	for path := range c.entries {
		if filepath.Dir(path) == dir && !seen[path] {
			delete(c.entries, path)
		}
	}
	return schemas, nil
}

func (c *Cache) loadFile(path string) ([]*Schema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("derivepy: stat %s: %w", path, err)
	}
	if e, ok := c.entries[path]; ok && e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
		return e.schemas, e.err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("derivepy: parse %s: %w", path, err)
	}
	schemas, err := loadFile(fset, file)
	c.entries[path] = &cacheEntry{
		size:    info.Size(),
		modTime: info.ModTime(),
		schemas: schemas,
		err:     err,
	}
	return schemas, err
}

// Invalidate drops the cached entry for path, forcing a re-parse on the
// next load.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
