// Package commands implements the CLI commands for compdb.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/compdb/internal/app"
	"go.trai.ch/compdb/internal/build"
	"go.trai.ch/compdb/internal/core/domain"
)

// CLI represents the command line interface for compdb.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	logJSON    bool
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, opts app.LoadOptions) (*app.LoadResult, error)
	Invocations(ctx context.Context, opts app.LoadOptions) ([]domain.Invocation, error)
	SetLogJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "compdb",
		Short:         "Normalize and validate JSON compilation databases",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if c.logJSON {
				c.app.SetLogJSON(true)
			}
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to "+domain.ConfigFileName+" (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) loadOptions(databasePath string) app.LoadOptions {
	return app.LoadOptions{
		ConfigPath:   c.configPath,
		DatabasePath: databasePath,
	}
}
