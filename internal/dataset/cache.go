package dataset

import (
	"os"
	"sync"
	"time"
)

// sourceKey identifies one on-disk version of a source file.
type sourceKey struct {
	path    string
	modTime time.Time
	size    int64
}

// Cache is a Loader that memoizes the last successful parse, keyed by
// source identity (path, mtime, size). A changed key or an explicit
// Clear forces a re-parse; failed loads are never cached.
type Cache struct {
	// Sheet overrides the worksheet for Excel sources.
	Sheet string

	mu  sync.Mutex
	key sourceKey
	ds  *Dataset
}

func (c *Cache) Load(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &SourceNotFoundError{Path: path}
		}
		return nil, err
	}
	key := sourceKey{path: path, modTime: info.ModTime(), size: info.Size()}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ds != nil && c.key == key {
		return c.ds, nil
	}

	ds, err := Load(path, c.Sheet)
	if err != nil {
		return nil, err
	}
	c.key = key
	c.ds = ds
	return ds, nil
}

// Clear drops the cached dataset so the next Load re-parses the source.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.ds = nil
	c.key = sourceKey{}
	c.mu.Unlock()
}
