package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/pipeline"
	"github.com/matzehuels/gridda/pkg/render/sink"
)

// layoutCommand creates the layout command, which prints the computed grid
// geometry without rendering anything.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		asJSON    bool
		withLines bool
	)
	var nf *notebookFlags

	cmd := &cobra.Command{
		Use:   "layout [notebook.toml]",
		Short: "Print the grid geometry of every page",
		Long: `Print the grid geometry of every page.

For each page the table shows its number, side, grid size in cells, and the
origin of the grid block in millimetres from the top-left corner of the page.
With --json the full geometry is written to stdout instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := nf.resolve(cmd, argOrEmpty(args))
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), st, asJSON, withLines)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write the geometry as JSON")
	cmd.Flags().BoolVar(&withLines, "lines", false, "include line segments in JSON output")
	nf = addNotebookFlags(cmd)

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, st notebook.State, asJSON, withLines bool) error {
	sheets, err := c.newRunner().Compose(ctx, st, pipeline.Options{})
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	if asJSON {
		var opts []sink.JSONOption
		if withLines {
			opts = append(opts, sink.WithJSONLines())
		}
		data, err := sink.RenderJSON(sheets, opts...)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	d, err := st.Dimensions()
	if err != nil {
		return err
	}
	printKeyValue("Paper", fmt.Sprintf("%s (%g × %g mm)", st.Paper.Label(), d.Width, d.Height))
	printKeyValue("Grid", st.Grid.Describe())
	printNewline()
	fmt.Fprintln(stdout, layoutTable(sheets).Render())
	return nil
}

// layoutTable renders one row per sheet.
func layoutTable(sheets []notebook.Sheet) *table.Table {
	rows := make([][]string, 0, len(sheets))
	for _, sh := range sheets {
		g := sh.Geometry
		selected := ""
		if sh.Selected {
			selected = iconSelected
		}
		rows = append(rows, []string{
			strconv.Itoa(sh.Page.Number),
			string(sh.Page.Side),
			fmt.Sprintf("%d × %d", g.Columns, g.Rows),
			fmt.Sprintf("%.2f", g.AdjustedOriginX),
			fmt.Sprintf("%.2f", g.OriginY),
			selected,
			sh.Page.Title,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Page", "Side", "Cells", "X (mm)", "Y (mm)", "Sel", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleTableHeader
			case col == 0:
				return StyleHighlight
			case col == 5:
				return StyleWarning
			}
			return lipgloss.NewStyle()
		})
}
