package dirsize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/dirsize/internal/walk"
)

// Options configures a size calculation.
type Options struct {
	// Path is the root of the tree to measure.
	Path string
	// Logger receives debug output about skipped entries. Nil discards it.
	Logger *logrus.Entry
}

// discardLogger returns a logger that drops everything.
func discardLogger() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.PanicLevel)

	return logrus.NewEntry(log)
}

// Calculate walks the tree at opt.Path and returns the size of every counted
// file together with their total.
//
// The root must exist; otherwise the error from inspecting it is returned.
// Once the walk has started, entries that cannot be inspected are skipped and
// never turn into an error.
func Calculate(opt Options) (*Result, error) {
	log := opt.Logger
	if log == nil {
		log = discardLogger()
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if _, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	}

	acc := newAccumulator(log)
	start := time.Now()

	if err := walk.Walk(opt.Path, acc); err != nil {
		return nil, fmt.Errorf("walking %q: %w", opt.Path, err)
	}

	result := acc.result()
	result.Elapsed = time.Since(start)

	log.WithFields(logrus.Fields{
		"path":    opt.Path,
		"files":   len(result.FileSizes),
		"total":   humanize.IBytes(uint64(result.TotalSize)), //nolint:gosec // Sizes are never negative
		"elapsed": result.Elapsed,
	}).Debug("walk finished")

	return result, nil
}
