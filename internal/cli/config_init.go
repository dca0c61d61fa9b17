package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/recordgrid/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a configuration file holding the default values.

The file is written to --config when given, otherwise to
$RECORDGRID_HOME/config.yaml or ~/.recordgrid/config.yaml.`,
		Example: `  # Create configuration
  recordgrid config init

  # Create configuration, overwriting existing
  recordgrid config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			written, err := config.WriteDefault(path, force)
			if err != nil {
				return err
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", written)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long:  "Prints the configuration after applying the config file and RECORDGRID_* environment overrides.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}

			source := cfg.Path()
			if source == "" {
				source = "defaults"
			}
			w := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(w, "# source: %s\n", source); err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		},
	}
}
