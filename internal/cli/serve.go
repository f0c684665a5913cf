package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridda/internal/server"
)

const defaultAddr = ":8080"

// serveCommand starts the browser preview.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var nf *notebookFlags

	cmd := &cobra.Command{
		Use:   "serve [notebook.toml]",
		Short: "Preview and edit the notebook in a browser",
		Long: `Preview and edit the notebook in a browser.

The preview shows every page with its grid, label and selection. Pages can be
added, selected and downloaded as PDF. When a notebook file is given, the
"save" endpoint writes changes back to it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := argOrEmpty(args)
			st, err := nf.resolve(cmd, path)
			if err != nil {
				return err
			}

			opts := []server.Option{server.WithLogger(loggerFromContext(cmd.Context()).WithPrefix("http"))}
			if path != "" {
				opts = append(opts, server.WithSavePath(path))
			}
			srv := server.New(st, opts...)

			printInfo("Serving %s on %s", st.Paper.Label(), StyleHighlight.Render(previewURL(addr)))
			err = srv.ListenAndServe(cmd.Context(), addr)
			if errors.Is(err, context.Canceled) {
				printSuccess("Server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	nf = addNotebookFlags(cmd)
	return cmd
}

// previewURL turns a listen address into a clickable URL.
func previewURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
