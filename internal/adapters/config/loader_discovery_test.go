package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/internal/adapters/config"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoader_Discovery(t *testing.T) {
	tests := []struct {
		name       string
		configDir  string
		cwd        string
		wantRootOf string
	}{
		{name: "config in cwd", configDir: ".", cwd: ".", wantRootOf: "."},
		{name: "config in parent", configDir: ".", cwd: "src/lib", wantRootOf: "."},
		{name: "nearest config wins", configDir: "src", cwd: "src/lib", wantRootOf: "src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl))

			rootDir := t.TempDir()
			require.NoError(t, os.MkdirAll(filepath.Join(rootDir, "src", "lib"), domain.DirPerm))
			createFile(t, rootDir, domain.ConfigFileName, "skip: [\"root\"]\n")
			if tt.configDir != "." {
				createFile(t, filepath.Join(rootDir, tt.configDir), domain.ConfigFileName, "skip: [\"nested\"]\n")
			}

			cfg, err := loader.Load(filepath.Join(rootDir, tt.cwd))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(rootDir, tt.wantRootOf), cfg.Root)
			assert.Equal(t, filepath.Join(cfg.Root, domain.DefaultDatabaseFile), cfg.Database)
		})
	}
}

func TestLoader_Discovery_NoConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	cwd := t.TempDir()
	cfg, err := loader.Load(cwd)
	require.NoError(t, err)

	assert.Equal(t, cwd, cfg.Root)
	assert.Equal(t, filepath.Join(cwd, domain.DefaultDatabaseFile), cfg.Database)
	assert.Equal(t, cwd, cfg.BaseDir)
	assert.Empty(t, cfg.Skip)
}

func TestLoader_Discovery_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "baseDir: src\n")
	nested := filepath.Join(rootDir, "nested")
	require.NoError(t, os.MkdirAll(filepath.Join(nested, domain.ConfigFileName), domain.DirPerm))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, rootDir, cfg.Root)
	assert.Equal(t, filepath.Join(rootDir, "src"), cfg.BaseDir)
}
