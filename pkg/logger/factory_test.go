package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("text format by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Info("fetching", "url", "http://example.com")

		out := buf.String()
		assert.Contains(t, out, "msg=fetching")
		assert.Contains(t, out, "url=http://example.com")
	})

	t.Run("json format produces valid records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithAttr(slog.String("service", "datafetch")),
		)
		log.Info("done")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "done", record["msg"])
		assert.Equal(t, "datafetch", record["service"])
	})

	t.Run("info level filters debug by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithVerbose())
		log.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("yaml"))
		})
	})
}
