package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every pipeline and HTTP event to a logger at debug level,
// and failures at warn level.
type LogHooks struct {
	Logger *log.Logger
}

var (
	_ PipelineHooks = LogHooks{}
	_ HTTPHooks     = LogHooks{}
)

func (h LogHooks) OnComposeStart(_ context.Context, paper string, pages int) {
	h.Logger.Debug("compose start", "paper", paper, "pages", pages)
}

func (h LogHooks) OnComposeComplete(_ context.Context, pages int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("compose failed", "err", err, "duration", d)
		return
	}
	h.Logger.Debug("compose done", "sheets", pages, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "formats", formats, "err", err, "duration", d)
		return
	}
	h.Logger.Debug("render done", "formats", formats, "duration", d)
}

func (h LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("http request", "method", method, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	if status >= 500 {
		h.Logger.Warn("http response", "method", method, "path", path, "status", status, "duration", d)
		return
	}
	h.Logger.Debug("http response", "method", method, "path", path, "status", status, "duration", d)
}
