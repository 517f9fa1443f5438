package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetsLevel(t *testing.T) {
	for level, expected := range map[string]logrus.Level{
		"":      logrus.InfoLevel,
		"info":  logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	} {
		logger, err := New(level, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, expected, logger.GetLevel(), "level %q", level)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("verbose", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestDebugPrintfOnlyShowsAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	require.NoError(t, err)

	DebugPrintf{Logger: logger}.Printf("GET %s", "users")
	assert.Empty(t, buf.String())

	logger.SetLevel(logrus.DebugLevel)
	DebugPrintf{Logger: logger}.Printf("GET %s", "users")
	assert.Contains(t, buf.String(), "GET users")
}
