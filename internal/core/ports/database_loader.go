package ports

import "go.trai.ch/compdb/internal/core/domain"

// DatabaseLoader defines the interface for reading a compilation database.
//
//go:generate go run go.uber.org/mock/mockgen -source=database_loader.go -destination=mocks/mock_database_loader.go -package=mocks
type DatabaseLoader interface {
	// Load reads the database file at path and returns its translation units in file order.
	Load(path string) (*domain.CompilationDatabase, error)
}
