package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New("dataset").Output(&buf)
	l.Info().Msg("loaded")
	assert.Contains(t, buf.String(), `"component":"dataset"`)
	assert.Contains(t, buf.String(), `"message":"loaded"`)
}

func TestSetDebug(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	SetDebug(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	SetDebug(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetup(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	Setup(&buf, true)
	cfgLog := New("config")
	cfgLog.Info().Str("provider", "ollama").Msg("loaded")
	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "{"), line)
	assert.Contains(t, line, `"component":"config"`)
	assert.Contains(t, line, `"provider":"ollama"`)
	assert.Contains(t, line, `"time":`)

	buf.Reset()
	Setup(&buf, false)
	cliLog := New("cli")
	cliLog.Info().Msg("ready")
	assert.Contains(t, buf.String(), "ready")
	assert.Contains(t, buf.String(), "component=")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}
