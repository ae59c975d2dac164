package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/npillmayer/emojis"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list [group]",
		Short: "List emoji groups, or the emojis of a group",
		Example: `  emojis list
  emojis list "Food & Drink"
  emojis list FoodAndDrink`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
	rootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, g := range emojis.Groups() {
			fmt.Fprintf(w, "%-20s %4d emojis\n", g, g.Emojis().Len())
		}
		return nil
	}
	g, ok := findGroup(args[0])
	if !ok {
		if similar := suggestGroups(args[0]); len(similar) > 0 {
			return fmt.Errorf("no emoji group %q; did you mean %q?", args[0], strings.Join(similar, `", "`))
		}
		return fmt.Errorf("no emoji group %q", args[0])
	}
	it := g.Emojis()
	for it.Next() {
		fmt.Fprintf(w, "%s  %s\n", it.Emoji(), it.Emoji().Name())
	}
	return nil
}

// findGroup accepts the Unicode name of a group ("Food & Drink") as well as
// the name of its constant ("FoodAndDrink"), case-insensitively.
func findGroup(name string) (emojis.Group, bool) {
	for _, g := range emojis.Groups() {
		ident := strings.ReplaceAll(strings.ReplaceAll(g.String(), "&", "And"), " ", "")
		if strings.EqualFold(name, g.String()) || strings.EqualFold(name, ident) {
			return g, true
		}
	}
	return 0, false
}

// suggestGroups returns the names of groups containing the letters of name in
// order, closest first.
func suggestGroups(name string) []string {
	groups := emojis.Groups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}
	ranks := fuzzy.RankFindFold(name, names)
	sort.Sort(ranks)
	similar := make([]string, len(ranks))
	for i, r := range ranks {
		similar[i] = r.Target
	}
	return similar
}
