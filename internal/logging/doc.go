// Package logging builds the diagnostic logger. Diagnostics always go to the
// error stream so standard output carries nothing but selected lines.
package logging
