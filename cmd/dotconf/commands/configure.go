package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotconf/internal/cli/prompt"
	"github.com/thoreinstein/dotconf/internal/engine"
	"github.com/thoreinstein/dotconf/internal/logging"
	"github.com/thoreinstein/dotconf/internal/render"
)

var (
	configureExecute     bool
	configureInteractive bool
)

func init() {
	configureCmd.Flags().BoolVarP(&configureExecute, "execute", "x", false,
		"apply the command when it is complete")
	configureCmd.Flags().BoolVarP(&configureInteractive, "interactive", "i", false,
		"pick each step from a list until the command is complete, then apply it")
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:   "configure [option] [operation] [key] [value...]",
	Short: "Suggest or apply a change to an option",
	Long: `Resolve a partial command and print the possible next steps.

The words are, in order: the option name, the operation (set, unset, or
remove for map options), the map key, and the value. For a scalar option the
value follows the operation directly. Extra words are joined with single
spaces, so values do not need quoting.

Each suggestion carries an autocomplete string that, typed as the next
command, advances by one step. Only a complete command is marked valid, and
only a valid command is applied by --execute; otherwise --execute is
ignored and the suggestions are printed.`,
	Example: `  # What can be done with APP_ENV?
  dotconf configure APP_ENV

  # Preview, then apply
  dotconf configure APP_ENV set staging
  dotconf configure APP_ENV set staging -x

  # Remove one entry from a map option
  dotconf configure FEATURES remove beta -x

  # Output for a terminal
  dotconf configure FEATURES --format text`,
	Args: cobra.ArbitraryArgs,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := currentSession(ctx)
	if err != nil {
		return err
	}

	if configureInteractive {
		return runInteractiveWithIO(ctx, s, cmd.OutOrStdout(), newPicker(cmd.InOrStdin(), cmd.ErrOrStderr()), args)
	}
	return runConfigureWithIO(ctx, s, cmd.OutOrStdout(), args, configureExecute)
}

// runConfigureWithIO allows injecting a writer for testing.
func runConfigureWithIO(ctx context.Context, s *session, w io.Writer, args []string, execute bool) error {
	logger := logging.FromContext(ctx)

	command := engine.ParseArgs(args)
	candidates := s.resolve(command)
	logger.Debug("resolved command", "args", args, "candidates", len(candidates))

	if execute {
		if c, ok := engine.Select(candidates); ok {
			if err := s.apply(ctx, c); err != nil {
				return err
			}
			_, err := fmt.Fprintln(w, render.ItemFor(c).Subtitle)
			return err
		}
		logger.Info("command is not complete, nothing applied", "candidates", len(candidates))
	}

	return render.Write(w, s.format, render.Items(candidates))
}

// picker chooses among rendered candidates and asks for free text.
type picker interface {
	SelectItem(label string, items []render.Item) (int, error)
	Ask(label string) (string, error)
}

var _ picker = (*prompt.Selector)(nil)
