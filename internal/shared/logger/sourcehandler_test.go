package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		minLevel   slog.Level
		logAt      slog.Level
		wantSource bool
	}{
		{name: "info below warn threshold", minLevel: slog.LevelWarn, logAt: slog.LevelInfo, wantSource: false},
		{name: "warn at threshold", minLevel: slog.LevelWarn, logAt: slog.LevelWarn, wantSource: true},
		{name: "error above threshold", minLevel: slog.LevelWarn, logAt: slog.LevelError, wantSource: true},
		{name: "debug threshold covers info", minLevel: slog.LevelDebug, logAt: slog.LevelInfo, wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewSourceHandler(base, tt.minLevel))

			log.Log(t.Context(), tt.logAt, "hello", "k", "v")

			out := buf.String()
			assert.Contains(t, out, "hello")
			if tt.wantSource {
				assert.Contains(t, out, "sourcehandler_test.go")
			} else {
				assert.NotContains(t, out, "source=")
			}
		})
	}
}

func TestSourceHandler_WithAttrsKeepsThreshold(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelError)).With("component", "test")

	log.Error("boom")

	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), "source=")
}
