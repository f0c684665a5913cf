package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/observability"
)

// Runner executes the pipeline and logs each stage.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different states.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// logger returns the per-run logger from opts, falling back to r.Logger.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// Execute runs the complete compose → render pipeline.
func (r *Runner) Execute(ctx context.Context, s notebook.State, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	composeStart := time.Now()
	sheets, err := r.Compose(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	result.Sheets = sheets
	result.Stats.Pages = len(sheets)
	result.Stats.ComposeTime = time.Since(composeStart)

	r.logger(opts).Info("composed pages",
		"paper", s.Paper,
		"grid", s.Grid.Describe(),
		"pages", len(sheets),
		"duration", result.Stats.ComposeTime)

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, sheets, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	for _, a := range artifacts {
		result.Stats.Bytes += len(a.Data)
	}

	r.logger(opts).Info("rendered outputs",
		"formats", opts.Formats,
		"files", len(artifacts),
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Compose lays out the pages of s, or only its selected pages when
// opts.SelectedOnly is set.
func (r *Runner) Compose(ctx context.Context, s notebook.State, opts Options) (sheets []notebook.Sheet, err error) {
	hooks := observability.Pipeline()
	hooks.OnComposeStart(ctx, string(s.Paper), s.Len())
	start := time.Now()
	defer func() { hooks.OnComposeComplete(ctx, len(sheets), time.Since(start), err) }()

	all, err := notebook.Compose(ctx, s)
	if err != nil {
		return nil, err
	}
	if !opts.SelectedOnly {
		return all, nil
	}

	for _, sh := range all {
		if sh.Selected {
			sheets = append(sheets, sh)
		}
	}
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no pages selected")
	}
	r.logger(opts).Debug("filtered to selection", "selected", len(sheets), "total", len(all))
	return sheets, nil
}

// Render generates artifacts for sheets in every requested format.
func (r *Runner) Render(ctx context.Context, sheets []notebook.Sheet, opts Options) (artifacts []Artifact, err error) {
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	for _, format := range opts.Formats {
		out, err := renderFormat(ctx, format, sheets, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		r.logger(opts).Debug("rendered format", "format", format, "files", len(out))
		artifacts = append(artifacts, out...)
	}
	return artifacts, nil
}
