package ports

// RealpathCache resolves canonical paths and remembers the answers for the life of the process.
// It satisfies domain.Canonicalizer.
//
//go:generate go run go.uber.org/mock/mockgen -source=realpath_cache.go -destination=mocks/mock_realpath_cache.go -package=mocks
type RealpathCache interface {
	// Realpath returns the absolute path with every symlink resolved.
	// It fails if the path does not exist.
	Realpath(path string) (string, error)
}
