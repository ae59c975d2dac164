package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/emojis"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	out, err := run(t, "lookup", ":rocket:", "\U0001f44b")
	if err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{
		"\U0001f680  rocket\n",
		"shortcodes: :rocket:\n",
		"group:      Travel & Places\n",
		"skin tone:  default (",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected lookup output to contain %q, is\n%s", expected, out)
		}
	}
	if _, err = run(t, "lookup", "no-such-emoji"); err == nil {
		t.Errorf("expected lookup of unknown emoji to fail")
	}
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "-n", "2", "heart")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 results, have %d:\n%s", len(lines), out)
	}
	if lines[0] != "\u2764\ufe0f  red heart  :heart:" {
		t.Errorf("expected 'red heart' as best match, have %q", lines[0])
	}
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Smileys & Emotion") || strings.Count(out, "\n") != 10 {
		t.Errorf("expected list of 10 groups, is\n%s", out)
	}
	out, err = run(t, "list", "food & drink")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "\U0001f347  grapes\n") {
		t.Errorf("expected Food & Drink to start with grapes, is\n%.60s", out)
	}
	if _, err = run(t, "list", "Snacks"); err == nil {
		t.Errorf("expected listing of unknown group to fail")
	}
}

func TestFindGroup(t *testing.T) {
	for _, name := range []string{"Food & Drink", "FoodAndDrink", "foodanddrink"} {
		if g, ok := findGroup(name); !ok || g != emojis.FoodAndDrink {
			t.Errorf("expected %q to denote group Food & Drink", name)
		}
	}
}

func TestSuggestGroups(t *testing.T) {
	if similar := suggestGroups("drink"); len(similar) != 1 || similar[0] != "Food & Drink" {
		t.Errorf("expected 'drink' to suggest Food & Drink, is %v", similar)
	}
	if similar := suggestGroups("flgs"); len(similar) == 0 || similar[0] != "Flags" {
		t.Errorf("expected 'flgs' to suggest Flags first, is %v", similar)
	}
	if similar := suggestGroups("Snacks"); len(similar) != 0 {
		t.Errorf("expected no suggestions for 'Snacks', have %v", similar)
	}
	_, err := run(t, "list", "symbol")
	if err == nil || !strings.Contains(err.Error(), `did you mean "Symbols"?`) {
		t.Errorf("expected unknown group to suggest Symbols, error is %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojis.nt")
	nt := "emojis:\n    search:\n        limit: 7\n        shortcodes: false\n"
	if err := os.WriteFile(path, []byte(nt), 0644); err != nil {
		t.Fatal(err)
	}
	conf, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	s := emojis.SearcherFromConfig(conf)
	if s.Limit != 7 || s.Shortcodes {
		t.Errorf("expected searcher {Shortcodes:false Limit:7} from configuration, is %+v", s)
	}
	if _, err = loadConfig(filepath.Join(t.TempDir(), "missing.nt")); err == nil {
		t.Errorf("expected missing configuration file to fail")
	}
	conf, err = loadConfig("")
	if err != nil || emojis.SearcherFromConfig(conf) != emojis.DefaultSearcher {
		t.Errorf("expected empty configuration to yield default searcher")
	}
}
