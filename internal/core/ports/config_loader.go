package ports

import "go.trai.ch/compdb/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers compdb.yaml by walking up from cwd.
	// Without a config file it returns the defaults rooted at cwd.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the configuration from an explicit path.
	LoadFile(path string) (*domain.Config, error)
}
