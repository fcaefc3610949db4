package compute

import (
	"github.com/go-kit/log/level"
	"github.com/grafana/regexp"
	lru "github.com/hashicorp/golang-lru/v2"

	util_log "github.com/grafana/colexpr/pkg/util/log"
)

// regexpCacheSize is the number of compiled patterns kept by each matcher.
const regexpCacheSize = 128

// regexpMatcher reports whether a value matches a regular expression given
// per row. Compiled patterns are cached. An invalid pattern matches nothing.
type regexpMatcher struct {
	cache *lru.Cache[string, *regexp.Regexp]
}

func newRegexpMatcher() *regexpMatcher {
	cache, err := lru.New[string, *regexp.Regexp](regexpCacheSize)
	if err != nil {
		panic(err)
	}
	return &regexpMatcher{cache: cache}
}

func (m *regexpMatcher) Eval(s, pattern []byte) bool {
	re, ok := m.cache.Get(string(pattern))
	if !ok {
		var err error
		if re, err = regexp.Compile(string(pattern)); err != nil {
			level.Debug(util_log.Logger).Log("msg", "invalid regular expression", "pattern", string(pattern), "err", err)
		}
		m.cache.Add(string(pattern), re)
	}
	return re != nil && re.Match(s)
}
