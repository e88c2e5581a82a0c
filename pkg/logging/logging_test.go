package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OP439/excalidraw/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.InfoLevel))

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warn message")
	logging.Error().Msg("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestNewLoggerFromConfig_File(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	path := filepath.Join(t.TempDir(), "reconcile.log")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "warn",
		Format: "json",
		Output: path,
		Fields: map[string]any{"service": "reconcile", "pid": 7},
	})

	logger.Info().Msg("hidden")
	logger.Warn().Msg("order keys repaired")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "order keys repaired")
	assert.Contains(t, out, `"service":"reconcile"`)
	assert.Contains(t, out, `"pid":7`)
}

func TestNewLoggerFromConfig_UnopenableOutput(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	stderr, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	original := os.Stderr
	os.Stderr = stderr
	t.Cleanup(func() {
		os.Stderr = original
		_ = stderr.Close()
	})

	// A directory cannot be opened for writing.
	dir := t.TempDir()
	logger := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Format: "json", Output: dir})
	logger.Info().Msg("still logged")

	content, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)
	out := string(content)
	assert.Contains(t, out, "Cannot open log output, logging to stderr")
	assert.Contains(t, out, dir)
	assert.Contains(t, out, "still logged")
}

func TestNewLoggerFromConfig_NilUsesDefaults(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	logger := logging.NewLoggerFromConfig(nil)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		"INFO":     zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"":         zerolog.InfoLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, logging.ParseLevel(in))
		})
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithReconcileID(ctx, "run-1")
	ctx = logging.WithScene(ctx, "board.excalidraw")
	ctx = logging.WithOperation(ctx, "merge")
	ctx = logging.WithFields(ctx, map[string]any{"batch": 2})

	logging.FromContext(ctx).Info().Msg("merged batch")

	entry, ok := testLogger.Find("merged batch")
	require.True(t, ok, testLogger.Output())
	assert.Equal(t, "run-1", entry["reconcile_id"])
	assert.Equal(t, "board.excalidraw", entry["scene"])
	assert.Equal(t, "merge", entry["operation"])
	assert.EqualValues(t, 2, entry["batch"])
	assert.Equal(t, "run-1", logging.ReconcileID(ctx))
}

func TestFromContext_Fallbacks(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Empty(t, logging.ReconcileID(context.Background()))
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)

	logging.Info().Str("element_id", "rect-1").Msg("kept local element")

	captured.AssertContains(t, "rect-1")
	captured.AssertNotContains(t, "ellipse")
	assert.Equal(t, 1, captured.Count())
}
