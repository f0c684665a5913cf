package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat prints wall-clock time with centiseconds, e.g. 14:32:01.45.
const logTimeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
	})
}

// stopwatch logs how long a command step took once it finishes.
type stopwatch struct {
	log   *log.Logger
	begun time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{log: l, begun: time.Now()}
}

// lap logs msg at info level with keyvals and an "elapsed" field.
func (s stopwatch) lap(msg string, keyvals ...any) {
	elapsed := time.Since(s.begun).Round(time.Millisecond)
	s.log.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when no logger is attached,
// which happens when a subcommand is executed outside RootCommand in tests.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
