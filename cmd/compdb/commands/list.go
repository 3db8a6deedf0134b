package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
	"go.trai.ch/compdb/internal/adapters/compdb"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats of the list command.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatShell   = "shell"
	FormatCommand = "command"
)

func (c *CLI) newListCmd() *cobra.Command {
	var (
		databasePath string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the normalized invocation of every translation unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			write, err := writerFor(format)
			if err != nil {
				return err
			}

			invocations, err := c.app.Invocations(cmd.Context(), c.loadOptions(databasePath))
			if err != nil {
				return err
			}

			return write(cmd.OutOrStdout(), invocations)
		},
	}

	cmd.Flags().StringVarP(&databasePath, "database", "d", "", "Path to the compilation database (overrides the config)")
	cmd.Flags().StringVarP(&format, "format", "f", FormatJSON, "Output format: json, yaml, shell or command")

	return cmd
}

type invocationWriter func(io.Writer, []domain.Invocation) error

func writerFor(format string) (invocationWriter, error) {
	switch format {
	case FormatJSON:
		return writeJSON, nil
	case FormatYAML:
		return writeYAML, nil
	case FormatShell:
		return writeShell, nil
	case FormatCommand:
		return writeCommand, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "unsupported --format"), "format", format)
	}
}

func writeJSON(w io.Writer, invocations []domain.Invocation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(invocations)
}

func writeYAML(w io.Writer, invocations []domain.Invocation) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(invocations); err != nil {
		return err
	}
	return enc.Close()
}

// writeShell prints one POSIX shell line per unit that runs the compiler in its directory.
func writeShell(w io.Writer, invocations []domain.Invocation) error {
	for _, inv := range invocations {
		line := "cd " + shellescape.Quote(inv.WorkingDirectory) + " && " + shellescape.QuoteCommand(inv.Rebuild())
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeCommand prints the rebuilt arguments in the "command" escaping of compilation databases.
// The result is not safe to paste into a shell.
func writeCommand(w io.Writer, invocations []domain.Invocation) error {
	for _, inv := range invocations {
		if _, err := fmt.Fprintln(w, compdb.Escape(inv.Rebuild())); err != nil {
			return err
		}
	}
	return nil
}
