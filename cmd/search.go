package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var flagSearchK int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search properties and functions by keyword",
	Long: `Search property and function names, owners and descriptions.

Every word of the query must match; matching ignores case.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchK, "k", 20, "Number of results to show (0 = all)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	d, err := loadDocumentation(cmd.Context())
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	results := d.Search(query, flagSearchK)

	fmt.Fprintf(stdout, "\nrnadoc search %q\n\n", query)
	fmt.Fprintf(stdout, "Results (%d found):\n", len(results))
	if len(results) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for i, r := range results {
		kind := "prop"
		if r.IsFunction {
			kind = "func"
		}
		fmt.Fprintf(w, "  %d.\t%s\t%s.%s\t%s\n", i+1, kind, r.Owner, r.Name, r.Type)
		if desc := strings.TrimSpace(r.Description); desc != "" {
			fmt.Fprintf(w, "  \t\t- %s\n", desc)
		}
	}
	return w.Flush()
}
