package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/compdb/internal/app"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader   *mocks.MockConfigLoader
	dbLoader *mocks.MockDatabaseLoader
	paths    *mocks.MockRealpathCache
	logger   *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		dbLoader: mocks.NewMockDatabaseLoader(ctrl),
		paths:    mocks.NewMockRealpathCache(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	application := app.New(m.loader, m.dbLoader, m.paths, m.logger)

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, nil
	}
	return provider, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "compdb version")
}

func TestRun_Check(t *testing.T) {
	provider, m := newProvider(t)

	cwd := t.TempDir()
	t.Chdir(cwd)

	cfg := &domain.Config{Root: cwd, Database: cwd + "/compile_commands.json", BaseDir: cwd}
	unit := domain.NewTranslationUnit("cc", []string{"-c", "a.c"}, cwd, "a.c", domain.SourceArguments)

	m.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	m.dbLoader.EXPECT().Load(cfg.Database).Return(domain.NewCompilationDatabase(unit), nil)
	m.logger.EXPECT().Info(gomock.Any())

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"check"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "1 translation units OK")
}

// TestRun_CommandError verifies that failures are logged and reported with exit code 1.
func TestRun_CommandError(t *testing.T) {
	provider, m := newProvider(t)

	m.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigParseFailed)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	exitCode := run(context.Background(), []string{"check"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_UnknownCommand(t *testing.T) {
	provider, m := newProvider(t)
	m.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"frobnicate"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ProviderError verifies that initialization failures are written to stderr.
func TestRun_ProviderError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"check"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: init failed\n", stderr.String())
}
