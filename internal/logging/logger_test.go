package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Levels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	SetupWithConsole(Config{Level: "error", Console: true}, &buf)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	log.Warn().Msg("hidden")
	assert.NotContains(t, buf.String(), "hidden")
	log.Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	SetupWithConsole(Config{Level: "loud", Console: true}, &buf)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "Invalid log level")
}

func TestSetup_File(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	path := filepath.Join(t.TempDir(), "filter.log")
	var console bytes.Buffer
	SetupWithConsole(Config{Level: "info", File: path}, &console)

	l := ContextualLogger(map[string]interface{}{"query": "smi"})
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), `"query":"smi"`)
	assert.Empty(t, console.String(), "console disabled when only a file is configured")
}
