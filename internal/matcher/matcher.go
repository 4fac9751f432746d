package matcher

import (
	"errors"
	"fmt"
	"strings"
)

// Matcher reports whether a line contains any reference string.
// Implementations are immutable and safe for repeated use.
type Matcher interface {
	Match(line string) bool
	// Len returns the number of reference strings the matcher was built from.
	Len() int
}

// Engine selects the matching algorithm.
type Engine string

// Supported engines.
const (
	EngineRegexp      Engine = "regexp"
	EngineAhoCorasick Engine = "ahocorasick"
)

// Engines lists every supported engine in display order.
var Engines = []Engine{EngineRegexp, EngineAhoCorasick}

// ErrUnknownEngine is returned for an engine name that is not supported.
var ErrUnknownEngine = errors.New("unknown matcher engine")

// BuildError reports a failure to construct a matcher.
type BuildError struct {
	Engine Engine
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building %s matcher: %v", e.Engine, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ParseEngine converts a name into an Engine. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseEngine(name string) (Engine, error) {
	e := Engine(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Engines {
		if e == known {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEngine, name, engineNames())
}

// Build compiles refs into a Matcher using the given engine.
func Build(refs []string, engine Engine) (Matcher, error) {
	switch engine {
	case EngineRegexp:
		if len(refs) == 0 {
			return nothing{}, nil
		}
		return newRegexpMatcher(refs)
	case EngineAhoCorasick:
		if len(refs) == 0 {
			return nothing{}, nil
		}
		return newAhoCorasick(refs), nil
	default:
		return nil, &BuildError{Engine: engine, Err: ErrUnknownEngine}
	}
}

// nothing is the matcher for an empty reference set.
type nothing struct{}

func (nothing) Match(string) bool { return false }

func (nothing) Len() int { return 0 }

func engineNames() string {
	names := make([]string, len(Engines))
	for i, e := range Engines {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
