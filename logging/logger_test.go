package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "info", cfg.Level)
	require.Equal(t, "json", cfg.Format)
	require.False(t, cfg.Caller)
	require.True(t, cfg.Timestamp)
	require.NotNil(t, cfg.Output)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"DEBUG":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"bogus":    zerolog.InfoLevel,
		"":         zerolog.InfoLevel,
	} {
		require.Equal(t, want, parseLevel(in), in)
	}
}

func TestInit_JSON(t *testing.T) {
	t.Cleanup(func() { Init(DefaultConfig()) })
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})

	Info().Msg("dropped")
	Warn().Str("stage", "kmeans").Msg("kept")
	Err(errors.New("boom")).Msg("failed")

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, `"level":"warn"`)
	require.Contains(t, out, `"stage":"kmeans"`)
	require.Contains(t, out, `"error":"boom"`)
	require.NotContains(t, out, `"time"`)
}

func TestInit_ConsoleWithTimestamp(t *testing.T) {
	t.Cleanup(func() { Init(DefaultConfig()) })
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "console", Timestamp: true, Output: &buf})

	Debug().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.NotContains(t, buf.String(), `"message"`)
}

func TestSetLoggerAndWith(t *testing.T) {
	t.Cleanup(func() { Init(DefaultConfig()) })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	child := With().Str("component", "pipeline").Logger()
	child.Info().Msg("child")

	require.Contains(t, buf.String(), `"component":"pipeline"`)
	require.Contains(t, buf.String(), `"message":"child"`)
}
