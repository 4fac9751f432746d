package reference

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is the cause recorded when a reference file is not text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")

// ReadError reports a reference file that could not be loaded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading reference file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Load reads the file at path and returns its non-empty lines.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &ReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return Parse(data), nil
}

// Parse splits data on '\n' and drops empty segments.
func Parse(data []byte) []string {
	var lines []string
	for len(data) > 0 {
		var line []byte
		line, data, _ = bytes.Cut(data, []byte{'\n'})
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}
