package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/dotconf/internal/config"
	"github.com/thoreinstein/dotconf/internal/errors"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dotconf configuration",
	Long: `Manage the dotconf configuration file.

Without a subcommand, prints the effective configuration.`,
	Example: `  # Print the effective configuration
  dotconf config

  # Create a starter config in the dotconf config directory
  dotconf config init

See Also: dotconf options`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, environment variables and flags are applied, in YAML format.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and env file paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigPathWithWriter(cmd.OutOrStdout(), currentConfig(), viper.ConfigFileUsed())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long: `Write a config file declaring one scalar and one map option.

The file goes to the dotconf config directory unless a path is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print a JSON Schema for the config file",
	Long: `Print a JSON Schema describing the config file. Editors with YAML language
support can use it to validate and complete config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.JSONSchema()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func currentConfig() *config.Config {
	if loadedConfig == nil {
		return config.Default()
	}
	return loadedConfig
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	return runConfigListWithWriter(cmd.OutOrStdout(), currentConfig())
}

// runConfigListWithWriter allows injecting a writer for testing.
func runConfigListWithWriter(w io.Writer, cfg *config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// runConfigPathWithWriter allows injecting a writer for testing.
func runConfigPathWithWriter(w io.Writer, cfg *config.Config, used string) error {
	if used == "" {
		used = "(none, using defaults)"
	}
	loc := cfg.Locations()
	fmt.Fprintf(w, "config:  %s\n", used)
	fmt.Fprintf(w, "env:     %s\n", loc.Primary)
	fmt.Fprintf(w, "pending: %s\n", loc.Pending)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.WriteFile(path, config.Example(), configInitForce); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return errors.NewUserError(err, "Use --force to overwrite it")
		}
		return errors.NewSystemError(err, "Check that the config directory is writable")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
