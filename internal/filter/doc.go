// Package filter streams lines from a reader to a writer, keeping the lines a
// [matcher.Matcher] selects.
package filter
