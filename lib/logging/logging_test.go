package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		buf := new(bytes.Buffer)
		logger, err := New(buf, Config{Level: "warn", Format: FormatJSON})
		require.NoError(t, err)

		logger.Info().Msg("dropped")
		logger.Warn().Msg("kept")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "warn", line["level"])
		assert.Equal(t, "kept", line["message"])
	})
	t.Run("console", func(t *testing.T) {
		buf := new(bytes.Buffer)
		logger, err := New(buf, Config{Level: "debug", Format: FormatConsole})
		require.NoError(t, err)

		logger.Debug().Msg("hello")

		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "DBG")
	})
	t.Run("invalid level", func(t *testing.T) {
		_, err := New(new(bytes.Buffer), Config{Level: "loud"})

		require.ErrorContains(t, err, "invalid log level")
	})
	t.Run("invalid format", func(t *testing.T) {
		_, err := New(new(bytes.Buffer), Config{Level: "info", Format: "xml"})

		require.EqualError(t, err, "invalid log format: xml")
	})
}

func TestWithComponent(t *testing.T) {
	t.Run("logger from context", func(t *testing.T) {
		buf := new(bytes.Buffer)
		ctx := zerolog.New(buf).WithContext(context.Background())

		ctx = WithComponent(ctx, "mcsd")
		log.Ctx(ctx).Info().Msg("loaded")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "mcsd", line[ComponentKey])
	})
	t.Run("falls back to global logger", func(t *testing.T) {
		buf := new(bytes.Buffer)
		previous := log.Logger
		t.Cleanup(func() { log.Logger = previous })
		log.Logger = zerolog.New(buf)

		ctx := WithComponent(context.Background(), "cmd")
		log.Ctx(ctx).Info().Msg("started")

		assert.Contains(t, buf.String(), `"component":"cmd"`)
	})
}
