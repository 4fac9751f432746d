// Package cli wires together the Cobra command for the linesift binary.
//
// It binds flags, reads configuration, runs the load/build/filter pipeline
// and maps each failure class to a deterministic exit code.
package cli
