// Package cli implements the gridda command-line interface.
//
// The commands share one flag surface for the notebook settings (paper,
// pitch, margins, alignment, lines, numbering). Each command loads an
// optional TOML notebook file and then applies only the flags that were set
// explicitly, so a flag always wins over the file.
//
// # Commands
//
//   - render: write PDF, SVG, PNG or JSON artefacts
//   - layout: print the per-page grid geometry
//   - papers: list the paper catalog
//   - init: write a default notebook file
//   - edit: interactive page editor
//   - serve: browser preview with a JSON API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context in the root PersistentPreRunE.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridda/pkg/buildinfo"
	"github.com/matzehuels/gridda/pkg/pipeline"
)

const (
	// appName is the application name used for display.
	appName = "gridda"

	// defaultConfigName is the file written by init when no path is given.
	defaultConfigName = "notebook.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "gridda generates printable grid notebook pages",
		Long: `gridda lays out square grids on notebook paper sizes and renders them as
print-ready PDF, SVG or PNG pages, with page numbers and binding-aware margins.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.papersCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// outputDir returns the default artefact directory for a notebook file: the
// file name without its extension, next to the file. Without a file it is the
// document name in the working directory.
func outputDir(configPath string) string {
	if configPath == "" {
		return pipeline.DocumentName
	}
	return strings.TrimSuffix(configPath, filepath.Ext(configPath))
}
