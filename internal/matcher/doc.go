// Package matcher compiles a set of reference strings into a predicate that
// reports whether a line contains any of them as a literal substring.
//
// Two engines are available. [EngineRegexp] escapes every reference with
// [regexp.QuoteMeta] and compiles a single alternation. [EngineAhoCorasick]
// builds a byte-level Aho-Corasick automaton with
// github.com/cloudflare/ahocorasick, which scans each line once regardless of
// how many references there are. Both engines give identical
// answers.
//
// An empty reference set produces a matcher that matches nothing.
package matcher
