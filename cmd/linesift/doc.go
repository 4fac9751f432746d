// Linesift filters standard input against the lines of a reference file.
//
// Any line coming in from stdin that is also present in the given file will be
// passed to stdout. "Present" means substring containment: an input line is
// passed when it contains any non-empty line of the file, taken literally.
//
// Usage:
//
//	linesift refs.txt < input.log          # keep lines containing a reference
//	linesift -n refs.txt < input.log       # drop them instead
//	linesift -e ahocorasick big-list.txt   # automaton engine for large sets
//
// Exit codes: 0 success, 1 stdin/stdout failure, 2 usage or config error,
// 3 unreadable reference file, 4 matcher build failure.
package main
