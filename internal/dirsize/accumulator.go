package dirsize

import (
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/idelchi/dirsize/internal/walk"
)

// SkipReason explains why an entry was left out of the result.
type SkipReason int

const (
	// SkipUnsupportedType marks entries that are neither regular files nor symbolic links.
	SkipUnsupportedType SkipReason = iota + 1
	// SkipDuplicate marks further names of an already counted storage object.
	SkipDuplicate
	// SkipNoIdentity marks entries whose identity could not be read.
	SkipNoIdentity
	// SkipNoSize marks entries whose size could not be read.
	SkipNoSize
	// SkipVisitFailed marks entries whose metadata could not be read at all.
	SkipVisitFailed
)

// String returns a short name for the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipUnsupportedType:
		return "unsupported type"
	case SkipDuplicate:
		return "duplicate"
	case SkipNoIdentity:
		return "no identity"
	case SkipNoSize:
		return "no size"
	case SkipVisitFailed:
		return "visit failed"
	default:
		return "unknown"
	}
}

// outcome is the result of inspecting a single entry.
// A zero reason means the entry was counted with size.
type outcome struct {
	size   int64
	reason SkipReason
	err    error
}

// accumulator sums entry sizes for a single walk.
// It is not safe for concurrent use; the walker calls it from one goroutine.
type accumulator struct {
	log        *logrus.Entry
	visited    map[walk.FileKey]struct{}
	fileSizes  map[string]int64
	totalSize  int64
	skipCounts map[SkipReason]int64
}

// newAccumulator creates an empty accumulator logging to log.
func newAccumulator(log *logrus.Entry) *accumulator {
	return &accumulator{
		log:        log,
		visited:    make(map[walk.FileKey]struct{}),
		fileSizes:  make(map[string]int64),
		skipCounts: make(map[SkipReason]int64),
	}
}

// PreVisitDirectory always descends. Directory entries add nothing to the total.
func (a *accumulator) PreVisitDirectory(string, walk.Attributes) error {
	return nil
}

// VisitFile counts the entry unless it was skipped.
func (a *accumulator) VisitFile(path string, attrs walk.Attributes) error {
	a.record(path, a.inspect(attrs))

	return nil
}

// VisitFileFailed records the failure and continues.
func (a *accumulator) VisitFileFailed(path string, err error) error {
	a.record(path, outcome{reason: SkipVisitFailed, err: err})

	return nil
}

// PostVisitDirectory logs listing errors and continues.
func (a *accumulator) PostVisitDirectory(path string, err error) error {
	if err != nil {
		a.log.WithError(err).WithField("path", path).Debug("directory listing incomplete")
	}

	return nil
}

// inspect decides whether an entry is counted.
// The identity is marked visited before the size is read, so a second name of
// an object whose size is unreadable is not retried.
func (a *accumulator) inspect(attrs walk.Attributes) outcome {
	mode := attrs.Mode()
	if !mode.IsRegular() && mode&fs.ModeSymlink == 0 {
		return outcome{reason: SkipUnsupportedType}
	}

	key, err := attrs.Key()
	if err != nil {
		return outcome{reason: SkipNoIdentity, err: err}
	}

	if _, ok := a.visited[key]; ok {
		return outcome{reason: SkipDuplicate}
	}

	a.visited[key] = struct{}{}

	size, err := attrs.Size()
	if err != nil {
		return outcome{reason: SkipNoSize, err: err}
	}

	return outcome{size: size}
}

// record applies an outcome to the totals.
func (a *accumulator) record(path string, o outcome) {
	if o.reason != 0 {
		a.skipCounts[o.reason]++

		entry := a.log.WithFields(logrus.Fields{"path": path, "reason": o.reason.String()})
		if o.err != nil {
			entry = entry.WithError(o.err)
		}

		entry.Debug("skipping entry")

		return
	}

	a.totalSize += o.size
	a.fileSizes[path] = o.size
}

// result hands the accumulated state over as a Result.
func (a *accumulator) result() *Result {
	return &Result{
		FileSizes: a.fileSizes,
		TotalSize: a.totalSize,
		Skipped:   a.skipCounts,
	}
}
