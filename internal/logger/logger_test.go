package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, log.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, log.InfoLevel, ParseLevel(""))
	assert.Equal(t, log.InfoLevel, ParseLevel("verbose"))
}

func TestConfigure_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slidereel.log")

	require.NoError(t, Configure("debug", path))
	defer Close()

	Debug("frame", "slide", 3)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "frame")
	assert.Contains(t, string(data), "slide=3")
}

func TestConfigure_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	err := Configure("info", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file "+path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetOutput(t *testing.T) {
	require.NoError(t, Configure("info", ""))
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden")
	Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
