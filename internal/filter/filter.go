package filter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dshills/linesift/internal/matcher"
)

// ErrInvalidUTF8 is the cause recorded for an input line that is not text.
var ErrInvalidUTF8 = errors.New("line is not valid UTF-8 text")

// InputError reports a failure to read or decode input. Line is the 1-based
// number of the offending line.
type InputError struct {
	Line int64
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("reading input line %d: %v", e.Line, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError reports a failure to write selected lines.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing output: %v", e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// Options controls a filter run.
type Options struct {
	// Negate selects lines that match none of the references.
	Negate bool
	// Buffered flushes only when the buffer fills and at end of input.
	// Otherwise every emitted line is flushed immediately.
	Buffered bool
}

// Stats summarizes a filter run.
type Stats struct {
	LinesRead    int64
	LinesEmitted int64
	BytesRead    int64
}

// Run reads r line by line until EOF and writes every selected line to w
// followed by '\n'. A line is selected when m matches it, or when it does not
// and opts.Negate is set. Trailing "\n" and "\r\n" terminators are stripped
// before matching. Lines written before an error remain written.
func Run(r io.Reader, w io.Writer, m matcher.Matcher, opts Options) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return stats, flushAfter(bw, &InputError{Line: stats.LinesRead + 1, Err: readErr})
		}
		if line == "" {
			break
		}
		stats.LinesRead++
		stats.BytesRead += int64(len(line))

		line = trimEOL(line)
		if !utf8.ValidString(line) {
			return stats, flushAfter(bw, &InputError{Line: stats.LinesRead, Err: ErrInvalidUTF8})
		}

		if m.Match(line) != opts.Negate {
			if err := writeLine(bw, line, !opts.Buffered); err != nil {
				return stats, err
			}
			stats.LinesEmitted++
		}

		if readErr == io.EOF {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, &OutputError{Err: err}
	}
	return stats, nil
}

func writeLine(bw *bufio.Writer, line string, flush bool) error {
	if _, err := bw.WriteString(line); err != nil {
		return &OutputError{Err: err}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return &OutputError{Err: err}
	}
	if flush {
		if err := bw.Flush(); err != nil {
			return &OutputError{Err: err}
		}
	}
	return nil
}

// flushAfter emits whatever was selected before the failing line, then
// returns cause.
func flushAfter(bw *bufio.Writer, cause error) error {
	if err := bw.Flush(); err != nil {
		return errors.Join(cause, &OutputError{Err: err})
	}
	return cause
}

// trimEOL strips "\n" or "\r\n". A lone trailing '\r' on an unterminated
// final line is kept.
func trimEOL(line string) string {
	trimmed, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return line
	}
	return strings.TrimSuffix(trimmed, "\r")
}
