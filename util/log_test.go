package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newLogger("info", buf)
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "INFO")
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newLogger("chatty", buf)
	log.Info("hidden")
	log.Warn("failed to get contract")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "failed to get contract")
}
