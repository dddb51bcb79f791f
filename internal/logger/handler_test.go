package logger

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlainLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}).WithoutColor())
}

func TestPrettyHandlerWritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newPlainLogger(&buf, slog.LevelInfo)

	log.Info("item deleted", "id", "abc", "affected", 3, "took", 1500*time.Millisecond)

	line := buf.String()
	assert.Contains(t, line, "INFO  item deleted")
	assert.Contains(t, line, " id=abc")
	assert.Contains(t, line, " affected=3")
	assert.Contains(t, line, " took=1.5s")
	assert.NotContains(t, line, "\033[")
}

func TestPrettyHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newPlainLogger(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN  shown")
}

func TestPrettyHandlerNilOptionsDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil).WithoutColor())

	log.Debug("debug line")
	log.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestPrettyHandlerGroupsAndStoredAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newPlainLogger(&buf, slog.LevelDebug).With("component", "hub").WithGroup("ws")

	log.Debug("client registered", "clients", 2, slog.Group("peer", "ip", "10.0.0.1"))

	line := buf.String()
	require.Contains(t, line, " component=hub")
	require.Contains(t, line, " ws.clients=2")
	require.Contains(t, line, " ws.peer.ip=10.0.0.1")
}

func TestPrettyHandlerColorsByDefault(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewPrettyHandler(&buf, nil)).Error("failed")

	assert.Contains(t, buf.String(), red+"ERROR"+reset)
}
