package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapegate/pkg/logger"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("emits JSON by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Info("hello", slog.String("key", "value"))

		record := logLine(t, &buf)
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "value", record["key"])
	})

	t.Run("level filters lower records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")

		assert.Empty(t, buf.Bytes())
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("yaml")))
		})
	})

	t.Run("context extractors add attributes per record", func(t *testing.T) {
		t.Parallel()

		type ctxKey struct{}

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey{}).(string); ok {
					return slog.String("trace", v), true
				}
				return slog.Attr{}, false
			}),
		)

		ctx := context.WithValue(t.Context(), ctxKey{}, "abc-123")
		log.InfoContext(ctx, "traced")

		assert.Equal(t, "abc-123", logLine(t, &buf)["trace"])
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("service name is attached to every record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewFromConfig(
			logger.Config{Level: "info", Format: logger.FormatJSON, Name: "scrapegate"},
			logger.WithOutput(&buf),
		)
		log.Info("hello")

		assert.Equal(t, "scrapegate", logLine(t, &buf)["service"])
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewFromConfig(
			logger.Config{Level: "loud", Format: logger.FormatJSON},
			logger.WithOutput(&buf),
		)
		log.Info("kept")
		log.Debug("dropped")

		assert.Equal(t, "kept", logLine(t, &buf)["msg"])
	})
}
