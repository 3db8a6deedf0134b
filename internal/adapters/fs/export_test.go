package fs

// NewRealpathCacheWithResolver creates a cache that resolves paths with fn instead of the filesystem.
func NewRealpathCacheWithResolver(fn func(string) (string, error)) *RealpathCache {
	return &RealpathCache{resolve: fn}
}
