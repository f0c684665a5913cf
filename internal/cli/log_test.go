package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("composed pages") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("composed pages") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("composed pages") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("rsvg-convert missing") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestStopwatchLap(t *testing.T) {
	var buf bytes.Buffer
	watch := startStopwatch(newLogger(&buf, log.InfoLevel))
	watch.lap("rendered", "pages", 3)

	out := buf.String()
	for _, want := range []string{"rendered", "pages=3", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
