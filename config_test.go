package emojis

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSearcherFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojis")
	defer teardown()
	//
	if s := SearcherFromConfig(nil); s != DefaultSearcher {
		t.Errorf("expected nil configuration to yield default searcher, is %+v", s)
	}
	if s := SearcherFromConfig(testconfig.Conf{}); s != DefaultSearcher {
		t.Errorf("expected empty configuration to yield default searcher, is %+v", s)
	}
	conf := testconfig.Conf{
		"emojis.search.shortcodes": false,
		"emojis.search.limit":      5,
	}
	s := SearcherFromConfig(conf)
	if s.Shortcodes || s.Limit != 5 {
		t.Errorf("expected searcher {Shortcodes:false Limit:5}, is %+v", s)
	}
	if n := len(Collect(s.Search("face"))); n != 5 {
		t.Errorf("expected configured searcher to deliver 5 results, delivers %d", n)
	}
	conf = testconfig.Conf{
		"emojis.search.shortcodes": "true",
		"emojis.search.limit":      "-1",
	}
	if s = SearcherFromConfig(conf); !s.Shortcodes || s.Limit != 0 {
		t.Errorf("expected searcher {Shortcodes:true Limit:0}, is %+v", s)
	}
}
