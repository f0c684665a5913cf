package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridda/pkg/notebook"
)

// editCommand opens the interactive page editor on a notebook file.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <notebook.toml>",
		Short: "Edit pages interactively",
		Long: `Edit pages interactively.

Add, delete, reorder and title pages, select pages for partial printing, and
switch the numbering policy. Press w to write the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			st, err := notebook.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w (create it with 'gridda init %s')", path, err, path)
			}

			p := tea.NewProgram(NewEditorModel(st, path), tea.WithContext(cmd.Context()), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
					return cmd.Context().Err()
				}
				return fmt.Errorf("editor: %w", err)
			}
			if m, ok := final.(EditorModel); ok && m.Dirty() {
				printWarning("Quit without saving %s", path)
			}
			return nil
		},
	}
}
