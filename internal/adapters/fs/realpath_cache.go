// Package fs provides filesystem-backed adapters.
package fs

import (
	"errors"
	"path/filepath"
	"sync"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var (
	_ ports.RealpathCache  = (*RealpathCache)(nil)
	_ domain.Canonicalizer = (*RealpathCache)(nil)
)

// RealpathCache implements ports.RealpathCache on top of the local filesystem.
// Successful lookups are kept for the life of the cache; failures are retried.
type RealpathCache struct {
	resolve func(string) (string, error)

	entries      sync.Map // string -> string
	requestGroup singleflight.Group
}

// NewRealpathCache creates an empty cache.
func NewRealpathCache() *RealpathCache {
	return &RealpathCache{resolve: realpath}
}

// Realpath returns the canonical absolute form of path.
// Concurrent lookups of the same path share a single filesystem walk.
func (c *RealpathCache) Realpath(path string) (string, error) {
	if v, ok := c.entries.Load(path); ok {
		return v.(string), nil
	}

	result, err, _ := c.requestGroup.Do(path, func() (any, error) {
		// A previous flight may have finished between Load and Do.
		if v, ok := c.entries.Load(path); ok {
			return v, nil
		}

		resolved, err := c.resolve(path)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrPathResolutionFailed, err), "path", path)
		}
		c.entries.Store(path, resolved)
		return resolved, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

func realpath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
