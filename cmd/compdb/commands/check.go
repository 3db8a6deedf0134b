package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/compdb/internal/ui/style"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	var databasePath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load and validate the compilation database",
		Long: "Load the compilation database, apply the skip patterns and check that every " +
			"translation unit can be normalized and that no two units write the same output.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Check(cmd.Context(), c.loadOptions(databasePath))
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("%d translation units OK", res.Database.Len())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), style.Success(msg))
			return err
		},
	}

	cmd.Flags().StringVarP(&databasePath, "database", "d", "", "Path to the compilation database (overrides the config)")

	return cmd
}
