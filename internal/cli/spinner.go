package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a one-line status while a slow step such as PNG
// conversion runs. Only the animation goroutine writes to w.
type Spinner struct {
	w       io.Writer
	message string

	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	stop    sync.Once
}

func newSpinner(ctx context.Context, message string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, message)
}

func newSpinnerTo(ctx context.Context, w io.Writer, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{w: w, message: message, ctx: ctx, cancel: cancel, stopped: make(chan struct{})}
}

// Start launches the animation. It ends on Stop or when the parent context
// is cancelled.
func (s *Spinner) Start() {
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.stopped)
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	label := StyleDim.Render(s.message)
	for frame := 0; ; frame = (frame + 1) % len(spinnerFrames) {
		select {
		case <-s.ctx.Done():
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-tick.C:
			fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[frame]), label)
		}
	}
}

// Stop ends the animation, clears the line and waits for the goroutine.
// Calling it again is a no-op.
func (s *Spinner) Stop() {
	s.stop.Do(func() {
		s.cancel()
		<-s.stopped
	})
}

// StopWithError stops the spinner and reports message as a failure.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}
