// Package observability lets a binary observe the pipeline and the preview
// server without those packages depending on a metrics backend.
//
// Hooks are installed once by main with [SetPipelineHooks] and
// [SetHTTPHooks]; library code fetches the current set with [Pipeline] and
// [HTTP] at the start of each operation. The defaults do nothing.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives compose and render events.
type PipelineHooks interface {
	OnComposeStart(ctx context.Context, paper string, pages int)
	OnComposeComplete(ctx context.Context, pages int, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// HTTPHooks receives preview-server request events.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, status int, duration time.Duration)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnComposeStart(context.Context, string, int)                      {}
func (NoopPipelineHooks) OnComposeComplete(context.Context, int, time.Duration, error)     {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

type pipelineBox struct{ h PipelineHooks }
type httpBox struct{ h HTTPHooks }

var (
	pipelineHooks atomic.Pointer[pipelineBox]
	httpHooks     atomic.Pointer[httpBox]
)

func init() { Reset() }

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineHooks.Store(&pipelineBox{h})
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		httpHooks.Store(&httpBox{h})
	}
}

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks { return pipelineHooks.Load().h }

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks { return httpHooks.Load().h }

// Reset restores the no-op hooks.
func Reset() {
	pipelineHooks.Store(&pipelineBox{NoopPipelineHooks{}})
	httpHooks.Store(&httpBox{NoopHTTPHooks{}})
}
