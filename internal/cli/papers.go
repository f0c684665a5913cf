package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridda/pkg/binding"
	"github.com/matzehuels/gridda/pkg/grid"
	"github.com/matzehuels/gridda/pkg/paper"
)

// papersCommand lists the paper catalog.
func (c *CLI) papersCommand() *cobra.Command {
	var pitch string

	cmd := &cobra.Command{
		Use:   "papers",
		Short: "List the supported paper sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := grid.ParsePitch(pitch)
			if err != nil {
				return err
			}
			t, err := papersTable(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, t.Render())
			printNextStep("Render one", "gridda render --paper <id>")
			return nil
		},
	}

	cmd.Flags().StringVar(&pitch, "pitch", grid.DefaultPitch.String(), "pitch used for the cell count column")
	return cmd
}

// papersTable lists every catalogued size with the cell count a default grid
// at pitch p fits on it.
func papersTable(p grid.Pitch) (*table.Table, error) {
	cfg := grid.DefaultConfig()
	cfg.Pitch = p

	var rows [][]string
	for _, size := range paper.All() {
		d, err := paper.DimensionsOf(size)
		if err != nil {
			return nil, err
		}
		g, err := grid.Layout(d, cfg, binding.Left)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{
			string(size),
			size.Label(),
			fmt.Sprintf("%g × %g", d.Width, d.Height),
			fmt.Sprintf("%d × %d", g.Columns, g.Rows),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("ID", "Name", "Size (mm)", "Cells @ "+p.String()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleTableHeader
			case col == 0:
				return StyleHighlight
			case col == 3:
				return StyleDim
			}
			return lipgloss.NewStyle()
		})
	return t, nil
}
