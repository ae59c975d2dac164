package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/emojis"
	"github.com/spf13/cobra"
)

var searchFlags = struct {
	limit     *int
	namesOnly *bool
	scores    *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "search query",
		Short: "Search emojis by name and shortcode",
		Long: `search matches a query against the names and shortcodes of all emojis.
The characters of the query have to appear in order, but not necessarily
adjacent. Results are listed best match first.`,
		Example: `  emojis search --limit 5 heart`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runSearch,
	}
	searchFlags.limit = cmd.Flags().IntP("limit", "n", 0, "maximum number of results (default: unlimited)")
	searchFlags.namesOnly = cmd.Flags().Bool("names-only", false, "do not match shortcodes")
	searchFlags.scores = cmd.Flags().Bool("scores", false, "print match scores")
	rootCmd.AddCommand(cmd)
}

// searcher combines the configuration with command-line flags, which take
// precedence.
func searcher(cmd *cobra.Command) emojis.Searcher {
	s := emojis.SearcherFromConfig(config)
	if cmd.Flags().Changed("limit") {
		s.Limit = *searchFlags.limit
	}
	if cmd.Flags().Changed("names-only") {
		s.Shortcodes = !*searchFlags.namesOnly
	}
	return s
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	m := searcher(cmd).Search(query)
	if m.Len() == 0 {
		return fmt.Errorf("no emoji matches %q", query)
	}
	w := cmd.OutOrStdout()
	for m.Next() {
		e := m.Emoji()
		if *searchFlags.scores {
			fmt.Fprintf(w, "%12d  ", m.Score())
		}
		if code := e.Shortcode(); code != "" {
			fmt.Fprintf(w, "%s  %s  :%s:\n", e, e.Name(), code)
		} else {
			fmt.Fprintf(w, "%s  %s\n", e, e.Name())
		}
	}
	return nil
}
