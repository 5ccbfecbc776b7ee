package walk

import "io/fs"

// FileKey identifies the storage object behind a file across all of its names.
type FileKey struct {
	// Device is the device or volume the object lives on.
	Device uint64
	// Inode is the object's index on Device.
	Inode uint64
}

// Attributes describes the metadata of a visited entry, read without
// following symbolic links.
type Attributes interface {
	// Mode returns the entry's type and permission bits.
	Mode() fs.FileMode
	// Key returns the identity of the storage object backing the entry.
	Key() (FileKey, error)
	// Size returns the apparent size of the entry in bytes.
	Size() (int64, error)
}

// Visitor receives the entries of a walk.
//
// Returning nil continues the walk. fs.SkipDir returned from PreVisitDirectory
// skips the directory's contents; returned from VisitFile or VisitFileFailed it
// skips the remaining entries of the containing directory. fs.SkipAll stops the
// walk without error. Any other error stops the walk and is returned by Walk.
type Visitor interface {
	// PreVisitDirectory is called for a directory before its contents.
	PreVisitDirectory(path string, attrs Attributes) error
	// VisitFile is called for every entry that is not a directory.
	VisitFile(path string, attrs Attributes) error
	// VisitFileFailed is called when an entry's metadata cannot be read or a
	// directory cannot be listed.
	VisitFileFailed(path string, err error) error
	// PostVisitDirectory is called once a directory's contents are exhausted.
	// err is non-nil when listing stopped early.
	PostVisitDirectory(path string, err error) error
}
