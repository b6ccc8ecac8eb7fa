package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/kurochkinivan/port_assigner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := logging.ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := logging.ParseLevel("verbose")
	require.Error(t, err)
}

func TestNew_PlainTextWhenNotTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Warn("port collision", slog.String("rack", "R1"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, `msg="port collision"`)
	assert.Contains(t, out, "rack=R1")
}

func TestNew_WritesToFile(t *testing.T) {
	t.Parallel()

	file, err := logging.OpenFile(t.TempDir())
	require.NoError(t, err)

	var console bytes.Buffer
	log := logging.New(&console, slog.LevelInfo, file)

	log.Debug("hidden")
	log.With(slog.String("step", "assign ports")).Info("step passed")
	require.NoError(t, file.Close())

	data, err := os.ReadFile(file.Path())
	require.NoError(t, err)

	assert.Contains(t, string(data), `msg="step passed" step="assign ports"`)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, console.String(), `msg="step passed"`)
}

func TestFile_RotatesOnNewDay(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	now := time.Date(2026, 10, 18, 23, 59, 0, 0, time.Local)
	file, err := logging.OpenFile(dir)
	require.NoError(t, err)
	file.WithClock(func() time.Time { return now })

	_, err = file.Write([]byte("first run\n"))
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = file.Write([]byte("second run\n"))
	require.NoError(t, err)
	require.NoError(t, file.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	data, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Equal(t, "second run\n", string(data))
}
