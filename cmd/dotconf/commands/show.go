package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotconf/internal/engine"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
	"github.com/thoreinstein/dotconf/internal/render"
	"github.com/thoreinstein/dotconf/internal/schema"
)

var (
	showJSON        bool
	showShowSecrets bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showShowSecrets, "show-secrets", false, "Reveal values of secret-looking options")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [option]",
	Short: "Display the stored value of options",
	Long: `Display the value each declared option has in the env file.

Options that are not in the file show as <unset>. A map option whose stored
text is not a JSON object is reported and shown as <unset>.

Values of options whose names look secret (TOKEN, PASSWORD, SECRET, ...) are
masked by default. Use --show-secrets to reveal them.`,
	Example: `  dotconf show
  dotconf show FEATURES --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

// showEntry is one option in JSON output.
type showEntry struct {
	Name    string            `json:"name"`
	Kind    string            `json:"kind"`
	Present bool              `json:"present"`
	Value   string            `json:"value,omitempty"`
	Entries map[string]string `json:"entries,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := currentSession(ctx)
	if err != nil {
		return err
	}
	return runShowWithWriter(ctx, s, cmd.OutOrStdout(), args)
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(ctx context.Context, s *session, w io.Writer, args []string) error {
	logger := logging.FromContext(ctx)

	opts := s.schema.Options()
	if len(args) == 1 {
		opt, ok := s.schema.Lookup(args[0])
		if !ok {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrNotFound, "option %q", args[0]),
				"Run 'dotconf options' to list the declared options")
		}
		opts = []schema.Option{opt}
	}

	values := make([]engine.Value, len(opts))
	for i, opt := range opts {
		v, err := engine.CurrentValue(opt, s.file)
		if err != nil {
			logger.Warn("ignoring malformed stored value", "option", opt.Name, "error", err)
		}
		values[i] = v
	}

	if showJSON {
		return outputShowJSON(w, opts, values)
	}
	return outputShowText(w, s, opts, values)
}

func outputShowJSON(w io.Writer, opts []schema.Option, values []engine.Value) error {
	out := make([]showEntry, len(opts))
	for i, opt := range opts {
		v := values[i]
		e := showEntry{Name: opt.Name, Kind: opt.Kind.String(), Present: v.Present()}
		switch {
		case !v.Present():
		case opt.Kind == schema.KindMap:
			e.Entries = make(map[string]string, v.Len())
			for _, entry := range v.Entries() {
				e.Entries[entry.Key] = displayValue(entry.Key, entry.Value)
			}
		default:
			e.Value = displayValue(opt.Name, v.Text())
		}
		out[i] = e
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputShowText(w io.Writer, s *session, opts []schema.Option, values []engine.Value) error {
	if s.file.Bootstrapping() {
		fmt.Fprintf(w, "Store: %s (pending)\n\n", s.file.Target())
	} else {
		fmt.Fprintf(w, "Store: %s\n\n", s.file.Target())
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tVALUE")
	for i, opt := range opts {
		v := values[i]
		text := render.Unset
		if v.Present() {
			text = displayValue(opt.Name, v.String())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", opt.Name, opt.Kind, truncate(text, 60))
	}
	return tw.Flush()
}

// displayValue masks secret-looking values unless --show-secrets is set.
func displayValue(name, value string) string {
	if showShowSecrets {
		return value
	}
	if logging.ShouldMask(name) || logging.ContainsTokenPrefix(value) {
		return logging.MaskValue(value)
	}
	return value
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
