// Package config provides the configuration loader for compdb.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the local filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load finds compdb.yaml in cwd or the nearest parent directory and reads it.
// Without a config file the defaults apply, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		return defaults(filepath.Clean(cwd)), nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the config file at path. Relative paths inside it are
// resolved against the directory containing the file.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	var file Projectfile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn("unsupported config version " + file.Version + " in " + path + ", reading it as version " + SupportedVersion)
	}

	root := filepath.Dir(filepath.Clean(path))
	cfg := defaults(root)
	if file.Database != "" {
		cfg.Database = resolvePath(root, file.Database)
	}
	if file.BaseDir != "" {
		cfg.BaseDir = resolvePath(root, file.BaseDir)
	}
	cfg.Skip = file.Skip

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool, error) {
	currentDir := filepath.Clean(cwd)

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, err := l.FS.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(path string, target *Projectfile) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return nil
}

func defaults(root string) *domain.Config {
	return &domain.Config{
		Root:     root,
		Database: filepath.Join(root, domain.DefaultDatabaseFile),
		BaseDir:  root,
	}
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
