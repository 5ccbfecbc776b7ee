// Package walk provides a sequential, depth-first directory tree walker.
//
// The walker reports every entry to a Visitor through four hooks: before a
// directory is descended into, for each non-directory entry, when an entry
// cannot be inspected, and after a directory's contents are exhausted.
// Symbolic links are never followed; a link is reported as a leaf entry
// through VisitFile, even when it points to a directory.
package walk
