package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/recordgrid/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationInteractive marks commands that may take over the terminal, so
// logging must stay off stderr.
const annotationInteractive = "recordgrid/interactive"

// NewRootCmd creates the root Cobra command for the recordgrid CLI.
// It loads configuration, wires up logging and tracing, and registers the
// browse, list, generate and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "recordgrid",
		Short:         "Search, filter, sort and page through record sets",
		Long:          "recordgrid: an in-memory data table for the terminal with search, filters, sorting and pagination",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $RECORDGRID_HOME/config.yaml or ~/.recordgrid/config.yaml)")
	cmd.AddCommand(NewBrowseCmd(), NewListCmd(), NewGenerateCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse 500 generated records interactively
  recordgrid browse

  # Browse a data file and reload it when it changes
  recordgrid browse --data records.yaml --watch

  # Print page 2 of the active records whose fields contain "book", newest first
  recordgrid list --search book --status Active --sort createdAt:desc --page 2

  # Export the same page as JSON
  recordgrid list --search book --output json

  # Generate a dataset
  recordgrid generate --count 2000 --seed 7 --out records.yaml

  # Initialize configuration
  recordgrid config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
