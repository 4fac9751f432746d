package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/dshills/linesift/internal/config"
	"github.com/dshills/linesift/internal/filter"
	"github.com/dshills/linesift/internal/logging"
	"github.com/dshills/linesift/internal/matcher"
	"github.com/dshills/linesift/internal/reference"
)

// runFilter loads the reference file, builds the matcher and filters stdin
// into stdout. Errors are reported on stderr.
func runFilter(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsageError
	}
	defer func() { _ = logger.Sync() }()

	err = pipeline(cfg, stdin, stdout, logger)
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitCodeFor(err)
}

func pipeline(cfg config.Config, stdin io.Reader, stdout io.Writer, logger *zap.SugaredLogger) error {
	refs, err := reference.Load(cfg.ReferenceFile)
	if err != nil {
		return err
	}
	logger.Debugw("loaded reference file",
		"path", cfg.ReferenceFile,
		"lines", humanize.Comma(int64(len(refs))))
	if len(refs) == 0 {
		logger.Warnw("reference file has no lines; nothing will match", "path", cfg.ReferenceFile)
	}

	m, err := matcher.Build(refs, cfg.Engine)
	if err != nil {
		return err
	}
	logger.Debugw("built matcher", "engine", cfg.Engine, "references", m.Len(), "negate", cfg.Negate)

	stats, err := filter.Run(stdin, stdout, m, filter.Options{
		Negate:   cfg.Negate,
		Buffered: cfg.Buffered,
	})
	logger.Infow("filter finished",
		"read", humanize.Comma(stats.LinesRead),
		"emitted", humanize.Comma(stats.LinesEmitted),
		"bytes", humanize.Bytes(uint64(stats.BytesRead)))
	return err
}

// exitCodeFor maps a pipeline error to its exit code. Anything that is not a
// reference or build failure happened while streaming.
func exitCodeFor(err error) int {
	var (
		readErr  *reference.ReadError
		buildErr *matcher.BuildError
	)
	switch {
	case errors.As(err, &readErr):
		return ExitReferenceError
	case errors.As(err, &buildErr):
		return ExitBuildError
	default:
		return ExitStreamError
	}
}
