package matcher

import (
	"regexp"
	"strings"
)

type regexpMatcher struct {
	re *regexp.Regexp
	n  int
}

func newRegexpMatcher(refs []string) (*regexpMatcher, error) {
	quoted := make([]string, len(refs))
	for i, r := range refs {
		quoted[i] = regexp.QuoteMeta(r)
	}
	re, err := regexp.Compile(strings.Join(quoted, "|"))
	if err != nil {
		return nil, &BuildError{Engine: EngineRegexp, Err: err}
	}
	return &regexpMatcher{re: re, n: len(refs)}, nil
}

func (m *regexpMatcher) Match(line string) bool {
	return m.re.MatchString(line)
}

func (m *regexpMatcher) Len() int {
	return m.n
}
