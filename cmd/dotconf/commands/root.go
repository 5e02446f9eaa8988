// Package commands implements the CLI commands for dotconf.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/dotconf/cmd"
	"github.com/thoreinstein/dotconf/internal/config"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig is the configuration read by initConfig.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml, then the dotconf config directory)")
	rootCmd.PersistentFlags().String("env-file", "",
		"env file to edit (overrides env_file)")
	rootCmd.PersistentFlags().String("schema", "",
		"YAML or TOML file declaring the options (overrides schema_file)")
	rootCmd.PersistentFlags().String("format", "",
		"output format: alfred, json, text (overrides format)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("dotconf version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()

	flags := rootCmd.PersistentFlags()
	for key, flag := range map[string]string{
		config.KeyEnvFile:    "env-file",
		config.KeySchemaFile: "schema",
		config.KeyFormat:     "format",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			_ = viper.BindPFlag(key, f)
		}
	}

	loadedConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "dotconf",
	Short: "Edit the options of a .env file one suggestion at a time",
	Long: `dotconf edits named options stored in a KEY=VALUE environment file.

Options are declared in the dotconf config file, either inline or in a
separate YAML or TOML schema. An option is either a scalar (one string) or
a map (string keys and values, stored as a JSON object).

Commands are typed a word at a time. Each partial command prints the
possible next steps in a format a launcher such as Alfred can display;
adding --execute to a complete command applies it.

When the env file does not exist yet, changes are written next to it with
a .new suffix and dotconf keeps using that file until you rename it.`,
	Example: `  # List declared options
  dotconf configure

  # Show what can be done with a map option
  dotconf configure FEATURES

  # Set a map entry
  dotconf configure FEATURES set beta on --execute

  # Pick step by step in the terminal
  dotconf configure --interactive

  See Also: dotconf show, dotconf options`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("DOTCONF_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports config load and validation errors.
func checkConfig(cmd *cobra.Command, _ []string) error {
	// Skip validation for commands that do not touch the env file
	switch cmd.Name() {
	case "help", "version", "gen-doc", "init", "schema":
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if loadedConfig == nil {
		loadedConfig = config.Default()
	}

	if errs := config.Validate(loadedConfig); len(errs) > 0 {
		return errors.NewConfigError(errors.Join(errs...))
	}

	logging.FromContext(cmd.Context()).Debug("config loaded",
		"file", viper.ConfigFileUsed(),
		"env_file", loadedConfig.Locations().Primary)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
