package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/pipeline"
	"github.com/matzehuels/gridda/pkg/render"
)

type renderOpts struct {
	output   string
	formats  string
	selected bool
	scale    float64
	title    string
	noTitles bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	var nf *notebookFlags

	cmd := &cobra.Command{
		Use:   "render [notebook.toml]",
		Short: "Render notebook pages to PDF, SVG, PNG or JSON",
		Long: `Render notebook pages to PDF, SVG, PNG or JSON.

The notebook is read from the given TOML file, or the defaults when no file is
given. Flags override the file. PDF and JSON produce one file for the whole
notebook; SVG and PNG produce one file per page.

PNG output requires rsvg-convert (librsvg).`,
		Example: `  gridda render notebook.toml
  gridda render -f pdf,svg --paper b6 --pitch 3.94mm --pages 48
  gridda render notebook.toml --selected -o print`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := argOrEmpty(args)
			st, err := nf.resolve(cmd, path)
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = outputDir(path)
			}
			return c.runRender(cmd.Context(), st, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: <notebook> without extension)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.DefaultFormat, "output formats: pdf, svg, png, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.selected, "selected", false, "render only the pages selected in the notebook file")
	cmd.Flags().Float64Var(&opts.scale, "scale", render.DefaultPNGScale, "PNG pixels per millimetre")
	cmd.Flags().StringVar(&opts.title, "title", "", "PDF document title")
	cmd.Flags().BoolVar(&opts.noTitles, "no-titles", false, "omit page titles from every page")
	nf = addNotebookFlags(cmd)

	return cmd
}

// runRender executes the pipeline and writes every artefact into opts.output.
func (c *CLI) runRender(ctx context.Context, st notebook.State, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	popts := pipeline.Options{
		Formats:      pipeline.ParseFormats(opts.formats),
		SelectedOnly: opts.selected,
		PNGScale:     opts.scale,
		Title:        opts.title,
		NoTitles:     opts.noTitles,
		Logger:       logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if slices.Contains(popts.Formats, pipeline.FormatPNG) && !render.HasRSVG() {
		printWarning("rsvg-convert not found; PNG output will fail")
	}

	watch := startStopwatch(logger)
	var spinner *Spinner
	if slices.Contains(popts.Formats, pipeline.FormatPNG) {
		spinner = newSpinner(ctx, "Converting pages to PNG...")
		spinner.Start()
	}

	res, err := c.newRunner().Execute(ctx, st, popts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(opts.output, res.Artifacts)
	if err != nil {
		return err
	}
	watch.lap("rendered", "pages", res.Stats.Pages, "files", len(paths))

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(
		fmt.Sprintf("%d pages", res.Stats.Pages),
		fmt.Sprintf("%d files", len(paths)),
		formatBytes(res.Stats.Bytes),
	)
	return nil
}

// writeArtifacts writes each artefact into dir, creating it if needed, and
// returns the written paths.
func writeArtifacts(dir string, artifacts []pipeline.Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		p := filepath.Join(dir, a.Name)
		if err := os.WriteFile(p, a.Data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
