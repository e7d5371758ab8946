package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.WarnLevel, ParseLevel("loud"))
}

func TestNewWithConfigFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "wordstat", log.WarnLevel, false)

	l.Debug("hidden")
	l.Warn("shown", "n", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "wordstat")
}
