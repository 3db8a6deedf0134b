// Package app implements the application layer for compdb.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	dbLoader     ports.DatabaseLoader
	paths        ports.RealpathCache
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	dbLoader ports.DatabaseLoader,
	paths ports.RealpathCache,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		dbLoader:     dbLoader,
		paths:        paths,
		logger:       log,
	}
}

// LoadOptions selects the config file and compilation database.
type LoadOptions struct {
	// ConfigPath is an explicit config file. Discovery from Cwd is used when empty.
	ConfigPath string
	// DatabasePath overrides the database named by the config.
	DatabasePath string
	// Cwd is the directory relative paths are resolved against. Defaults to the process working directory.
	Cwd string
}

// LoadResult is a validated compilation database.
type LoadResult struct {
	Config       *domain.Config
	DatabasePath string
	Database     *domain.CompilationDatabase
	Skipped      int
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Load reads the compilation database, drops skipped units and validates the rest.
// Every unit of the result has its derived values computed, so later accesses cannot fail.
func (a *App) Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	cwd, err := resolveCwd(opts.Cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := a.loadConfig(cwd, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	dbPath := cfg.Database
	if opts.DatabasePath != "" {
		dbPath = absPath(cwd, opts.DatabasePath)
	}

	db, err := a.dbLoader.Load(dbPath)
	if err != nil {
		return nil, err
	}
	total := db.Len()

	db, err = a.applySkips(ctx, cfg, db)
	if err != nil {
		return nil, err
	}

	for _, u := range db.Units() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := u.CommonArguments(); err != nil {
			return nil, err
		}
	}

	if err := db.ValidateOutputs(); err != nil {
		return nil, zerr.With(err, "database", dbPath)
	}

	return &LoadResult{
		Config:       cfg,
		DatabasePath: dbPath,
		Database:     db,
		Skipped:      total - db.Len(),
	}, nil
}

// Invocations loads the database and returns the normalized invocation of every unit, in database order.
func (a *App) Invocations(ctx context.Context, opts LoadOptions) ([]domain.Invocation, error) {
	res, err := a.Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	invocations := make([]domain.Invocation, res.Database.Len())

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, u := range res.Database.Units() {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			inv, err := domain.NewInvocation(u, a.paths)
			if err != nil {
				return err
			}
			invocations[i] = inv
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return invocations, nil
}

// Check loads and validates the database and logs a summary.
func (a *App) Check(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	res, err := a.Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("%s: %d translation units, %d skipped",
		res.DatabasePath, res.Database.Len(), res.Skipped))
	return res, nil
}

func (a *App) loadConfig(cwd, configPath string) (*domain.Config, error) {
	if configPath == "" {
		return a.configLoader.Load(cwd)
	}

	cfg, err := a.configLoader.LoadFile(absPath(cwd, configPath))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *App) applySkips(
	ctx context.Context,
	cfg *domain.Config,
	db *domain.CompilationDatabase,
) (*domain.CompilationDatabase, error) {
	if len(cfg.Skip) == 0 {
		return db, nil
	}

	baseDir, err := a.paths.Realpath(cfg.BaseDir)
	if err != nil {
		return nil, zerr.With(err, "base_dir", cfg.BaseDir)
	}

	filter, err := domain.NewSkipFilter(baseDir, cfg.Skip)
	if err != nil {
		return nil, err
	}

	return db.Filter(func(u *domain.TranslationUnit) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		input, err := u.InputRealpath(a.paths)
		if err != nil {
			return false, err
		}
		skip, err := filter.Skip(input)
		return !skip, err
	})
}

func resolveCwd(cwd string) (string, error) {
	if cwd != "" {
		return filepath.Abs(cwd)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return dir, nil
}

func absPath(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}
