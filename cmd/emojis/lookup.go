package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/emojis"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "lookup emoji|shortcode...",
		Short:   "Look up emojis by glyph or shortcode",
		Example: `  emojis lookup 🤨 :rocket: wave`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runLookup,
	}
	rootCmd.AddCommand(cmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	missing := 0
	for _, q := range args {
		e := emojis.Lookup(q)
		if e == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "no emoji for %q\n", q)
			missing++
			continue
		}
		describe(cmd.OutOrStdout(), e)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d emojis not found", missing, len(args))
	}
	return nil
}

func describe(w io.Writer, e *emojis.Emoji) {
	fmt.Fprintf(w, "%s  %s\n", e, e.Name())
	fmt.Fprintf(w, "    group:      %s\n", e.Group())
	fmt.Fprintf(w, "    since:      Unicode %s\n", e.UnicodeVersion())
	if codes := e.Shortcodes(); len(codes) > 0 {
		fmt.Fprintf(w, "    shortcodes: :%s:\n", strings.Join(codes, ": :"))
	}
	if tone, ok := e.SkinTone(); ok {
		var variants strings.Builder
		for _, v := range e.SkinTones() {
			variants.WriteString(v.String())
		}
		fmt.Fprintf(w, "    skin tone:  %s (%s)\n", tone, variants.String())
	}
}
