package log_test

import (
	"bytes"
	"strings"
	"testing"

	"yearsort/internal/log"

	"github.com/stretchr/testify/assert"
)

func TestCallbackReceivesLeveledMessages(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(&bytes.Buffer{})

	type received struct {
		level   log.Level
		message string
	}
	var got []received
	log.SetCallback(func(level log.Level, message string) {
		got = append(got, received{level, message})
	})
	defer log.SetCallback(nil)

	log.Info("processing %d items", 3)
	log.Success("moved report.pdf")
	log.Warn("duplicate file: report.pdf")
	log.Error("move failed: %v", "permission denied")

	assert.Len(t, got, 4)
	assert.Equal(t, received{log.LevelInfo, "processing 3 items"}, got[0])
	assert.Equal(t, received{log.LevelSuccess, "moved report.pdf"}, got[1])
	assert.Equal(t, received{log.LevelWarning, "duplicate file: report.pdf"}, got[2])
	assert.Equal(t, received{log.LevelError, "move failed: permission denied"}, got[3])
}

func TestDebugNotForwarded(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(&bytes.Buffer{})

	var forwarded int
	log.SetCallback(func(log.Level, string) { forwarded++ })
	defer log.SetCallback(nil)

	log.SetDebug(true)
	defer log.SetDebug(false)

	log.Debug("resolver details")
	assert.Zero(t, forwarded)
	assert.True(t, strings.Contains(buf.String(), "resolver details"))
}
