package emojis

import (
	"github.com/npillmayer/schuko"
)

// Configuration keys for searching.
const (
	ConfigSearchShortcodes = "emojis.search.shortcodes" // bool
	ConfigSearchLimit      = "emojis.search.limit"      // int
)

// SearcherFromConfig creates a Searcher from a configuration. Keys which are
// not set keep the values of DefaultSearcher.
func SearcherFromConfig(conf schuko.Configuration) Searcher {
	s := DefaultSearcher
	if conf == nil {
		return s
	}
	if conf.IsSet(ConfigSearchShortcodes) {
		s.Shortcodes = conf.GetBool(ConfigSearchShortcodes)
	}
	if conf.IsSet(ConfigSearchLimit) {
		if s.Limit = conf.GetInt(ConfigSearchLimit); s.Limit < 0 {
			s.Limit = 0
		}
	}
	tracer().Debugf("searcher from configuration: shortcodes=%v, limit=%d", s.Shortcodes, s.Limit)
	return s
}
