package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotconf/internal/schema"
)

var optionsJSON bool

func init() {
	optionsCmd.Flags().BoolVar(&optionsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(optionsCmd)
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the declared options",
	Long: `List every option dotconf may edit, in declaration order, with its kind
and description.`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func runOptions(cmd *cobra.Command, _ []string) error {
	s, err := currentSession(cmd.Context())
	if err != nil {
		return err
	}
	return runOptionsWithWriter(cmd.OutOrStdout(), s.schema)
}

// runOptionsWithWriter allows injecting a writer for testing.
func runOptionsWithWriter(w io.Writer, s *schema.Schema) error {
	opts := s.Options()

	if optionsJSON {
		decls := make([]schema.Declaration, len(opts))
		for i, o := range opts {
			decls[i] = schema.Declaration{Name: o.Name, Kind: o.Kind.String(), Description: o.Description}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(decls)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tDESCRIPTION")
	for _, o := range opts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Name, o.Kind, o.Description)
	}
	return tw.Flush()
}
