package main

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/emojis"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	config  *string
	verbose *bool
}{}

// configuration loaded by the root command, shared by all sub-commands
var config schuko.Configuration

var rootCmd = &cobra.Command{
	Use:   "emojis",
	Short: "Look up and search Unicode emojis",
	Long: `emojis provides access to the Unicode emoji catalog (emoji version ` + emojis.UnicodeEmojiVersion + `):
* looks up emojis by glyph or shortcode,
* lists emoji groups and their members,
* searches emoji names and shortcodes.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.config = rootCmd.PersistentFlags().StringP("config", "c", "", "configuration file (NestedText)")
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "trace to stderr")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if *rootFlags.verbose {
		tracing.Select("emojis").SetTraceLevel(tracing.LevelDebug)
	}
	conf, err := loadConfig(*rootFlags.config)
	if err != nil {
		return err
	}
	config = conf
	return nil
}

// loadConfig reads a NestedText configuration file. Without a file, the
// configuration is empty and the defaults of package emojis apply.
func loadConfig(path string) (*koanfadapter.KConf, error) {
	conf := koanfadapter.New(nil, "", nil)
	if path == "" {
		return conf, nil
	}
	if err := conf.Koanf().Load(file.Provider(path), koanfadapter.Parser()); err != nil {
		return nil, fmt.Errorf("cannot read configuration file %s: %w", path, err)
	}
	return conf, nil
}
