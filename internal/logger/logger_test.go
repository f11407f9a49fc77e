package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"resource-converter/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "count")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Error("error occurred",
		slog.String("error", "test error"),
	)

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	reqLogger := logger.WithRequestID("req-123")
	reqLogger.Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithResource(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := logger.ContextWithRequestID(context.Background(), "req-9")
	resLogger := logger.WithResource(ctx, "labels", "fetch")
	resLogger.Info("fetching page")

	output := buf.String()
	assert.Contains(t, output, "fetching page")
	assert.Contains(t, output, `"request_id":"req-9"`)
	assert.Contains(t, output, `"resource":"labels"`)
	assert.Contains(t, output, `"operation":"fetch"`)
}

func TestLogger_Configure(t *testing.T) {
	t.Run("text format at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		logger.Configure(&buf, "warn", "text")

		logger.Info("hidden message")
		logger.Warn("visible message", slog.String("key", "value"))

		output := buf.String()
		assert.NotContains(t, output, "hidden message")
		assert.Contains(t, output, "visible message")
		assert.Contains(t, output, "key=value")
	})

	t.Run("json format at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		logger.Configure(&buf, "debug", "json")

		logger.Debug("debug message")

		assert.Contains(t, buf.String(), `"msg":"debug message"`)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
}

func TestLogger_InfoContext(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := context.Background()
	logger.InfoContext(ctx, "context message",
		slog.String("key", "value"),
	)

	output := buf.String()
	assert.Contains(t, output, "context message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
}

func TestLogger_GetLogger(t *testing.T) {
	lg := logger.GetLogger()
	require.NotNil(t, lg)
}

func TestLogger_Default(t *testing.T) {
	lg := logger.Default()
	require.NotNil(t, lg)
	// Default() should return the same instance as GetLogger()
	assert.Equal(t, logger.GetLogger(), lg)
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	fieldsLogger := logger.WithFields(context.Background(),
		slog.String("service", "export"),
		slog.Int("page_size", 50),
	)
	fieldsLogger.Info("page requested")

	output := buf.String()
	assert.Contains(t, output, "page requested")
	assert.Contains(t, output, "service")
	assert.Contains(t, output, "export")
	assert.Contains(t, output, "page_size")
	assert.Contains(t, output, "50")
	assert.NotContains(t, output, "request_id")
}

func TestLogger_DebugContext(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.DebugContext(context.Background(), "filter settled", slog.String("trigger", "filter"))

	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"trigger":"filter"`)
}

func TestLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx := logger.ContextWithRequestID(context.Background(), "req-7")
	assert.Equal(t, "req-7", logger.RequestIDFromContext(ctx))

	logger.FromContext(ctx).Info("fetched")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)

	buf.Reset()
	logger.FromContext(context.Background()).Info("plain")
	assert.NotContains(t, buf.String(), "request_id")
}
