package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotconf/internal/editor"
	"github.com/thoreinstein/dotconf/internal/errors"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the env file in your editor",
	Long: `Open the env file dotconf writes to in $EDITOR, falling back to $VISUAL,
nano, then vi. While the env file does not exist this is the pending file.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := currentSession(ctx)
	if err != nil {
		return err
	}

	target := s.file.Target()
	fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", target)

	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := editor.Open(ctx, target, streams); err != nil {
		return errors.NewUserError(err, "Set $EDITOR to an installed editor")
	}
	return nil
}
