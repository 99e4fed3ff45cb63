package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Level
		wantErr bool
	}{
		{input: "debug", want: log.DebugLevel},
		{input: "info", want: log.InfoLevel},
		{input: "warn", want: log.WarnLevel},
		{input: "error", want: log.ErrorLevel},
		{input: " WARN ", want: log.WarnLevel},
		{input: "fatal", wantErr: true},
		{input: "verbose", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("cpu refresh failed", "err", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, Prefix)
	assert.Contains(t, out, "cpu refresh failed")
	assert.Contains(t, out, "boom")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nobody hears this")
	})
}

func TestOpen_EmptyPath(t *testing.T) {
	logger, closer, err := Open("", log.DebugLevel)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "necomind.log")

	logger, closer, err := Open(path, log.DebugLevel)
	require.NoError(t, err)
	logger.Debug("identity captured", "gpu", "GPU not found")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "identity captured")
	assert.Contains(t, string(data), "GPU not found")
}

func TestOpen_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := Open(filepath.Join(blocker, "necomind.log"), log.InfoLevel)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
