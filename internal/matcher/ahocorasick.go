package matcher

import (
	"github.com/cloudflare/ahocorasick"
)

// ahoCorasick matches bytes, so a UTF-8 reference matches exactly where it
// occurs as a substring of the line.
type ahoCorasick struct {
	m *ahocorasick.Matcher
	// matchAll is set when a reference is empty; the empty string is a
	// substring of every line.
	matchAll bool
	n        int
}

func newAhoCorasick(refs []string) *ahoCorasick {
	ac := &ahoCorasick{n: len(refs)}
	dict := make([]string, 0, len(refs))
	for _, r := range refs {
		if r == "" {
			ac.matchAll = true
			continue
		}
		dict = append(dict, r)
	}
	ac.m = ahocorasick.NewStringMatcher(dict)
	return ac
}

func (ac *ahoCorasick) Match(line string) bool {
	if ac.matchAll {
		return true
	}
	return ac.m.Contains([]byte(line))
}

func (ac *ahoCorasick) Len() int {
	return ac.n
}
