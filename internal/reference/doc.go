// Package reference loads the reference lines that incoming text is checked
// against.
//
// A reference file is read in a single call, validated as UTF-8 and split on
// newline characters. Empty segments are dropped, so blank lines and a
// trailing newline contribute nothing. Lines are returned in file order and
// are neither trimmed nor deduplicated.
package reference
