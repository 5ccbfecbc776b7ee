package dirsize

import (
	"cmp"
	"slices"
	"time"
)

// FileSize represents a single reported path and its size.
type FileSize struct {
	// Path is the file path as reached from the root.
	Path string
	// Size is the apparent size in bytes.
	Size int64
}

// Result holds the outcome of a directory size calculation.
type Result struct {
	// FileSizes maps every counted path to its size in bytes.
	FileSizes map[string]int64
	// TotalSize is the sum of all values in FileSizes.
	TotalSize int64
	// Skipped counts the entries left out of FileSizes, per reason.
	Skipped map[SkipReason]int64
	// Elapsed is the time taken by the walk.
	Elapsed time.Duration
}

// Entries returns the counted files sorted by path.
func (r *Result) Entries() []FileSize {
	entries := make([]FileSize, 0, len(r.FileSizes))
	for path, size := range r.FileSizes {
		entries = append(entries, FileSize{Path: path, Size: size})
	}

	slices.SortFunc(entries, func(a, b FileSize) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return entries
}
