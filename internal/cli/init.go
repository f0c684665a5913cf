package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridda/pkg/notebook"
)

// initCommand writes a notebook file built from the defaults and any flags.
func (c *CLI) initCommand() *cobra.Command {
	var force bool
	var nf *notebookFlags

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a new notebook file",
		Long: `Write a new notebook file.

The file holds the paper size, grid settings, numbering policy and page list.
Settings given as flags are written into the file.`,
		Example: `  gridda init
  gridda init planner.toml --paper tn-standard --pitch 3.94mm --pages 64`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := argOrEmpty(args)
			if path == "" {
				path = defaultConfigName
			}
			st, err := nf.apply(cmd, notebook.Default())
			if err != nil {
				return err
			}
			return runInit(path, st, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	nf = addNotebookFlags(cmd)
	return cmd
}

func runInit(path string, st notebook.State, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := notebook.Save(path, st); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Created notebook")
	printFile(path)
	printStats(st.Paper.Label(), st.Grid.Describe(), fmt.Sprintf("%d pages", st.Len()))
	printNewline()
	printNextStep("Edit pages", "gridda edit "+path)
	printNextStep("Render", "gridda render "+path)
	return nil
}
