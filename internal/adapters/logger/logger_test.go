package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/internal/adapters/logger"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info("loaded 3 translation units")
	l.Warn("unsupported config version")

	assert.Equal(t, "loaded 3 translation units\n! unsupported config version\n", buf.String())
}

func TestLogger_Error_Golden(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name: "joined sentinel with metadata",
			err: zerr.With(
				errors.Join(domain.ErrDatabaseReadFailed, errors.New("permission denied")),
				"path", "/proj/compile_commands.json",
			),
			goldenName: "logger_error_chain",
		},
		{
			name: "wrapped sentinel",
			err: func() error {
				err := zerr.Wrap(domain.ErrDuplicateOutput, "output file is written by more than one entry")
				err = zerr.With(err, "path", "/proj/a.o")
				err = zerr.With(err, "first_input", "/proj/a.c")
				return zerr.With(err, "duplicate_input", "/proj/b.c")
			}(),
			goldenName: "logger_error_duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(t)

			l.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Info("hello")
	l.Error(zerr.With(zerr.Wrap(domain.ErrMissingCommand, "neither arguments nor command given"), "file", "a.c"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "hello", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "operation failed", failure["msg"])
	assert.Contains(t, failure, "error")
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	l, buf := newTestLogger(t)

	l.SetJSON(true)
	l.SetJSON(false)
	l.Info("back to pretty")

	assert.Equal(t, "back to pretty\n", buf.String())
}
