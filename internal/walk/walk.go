package walk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// entry adapts fs.FileInfo to Attributes.
type entry struct {
	path string
	info fs.FileInfo
}

func (e entry) Mode() fs.FileMode { return e.info.Mode() }

func (e entry) Key() (FileKey, error) { return fileKey(e.path, e.info) }

func (e entry) Size() (int64, error) { return e.info.Size(), nil }

// Walk visits the tree rooted at root depth-first, reporting each entry to v.
// The root is inspected with lstat, so a symbolic link root is a single leaf.
func Walk(root string, v Visitor) error {
	info, err := os.Lstat(root)
	if err != nil {
		err = v.VisitFileFailed(root, err)
	} else {
		err = walk(root, info, v)
	}

	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}

	return err
}

// walk visits path, descending into it when it is a directory.
func walk(path string, info fs.FileInfo, v Visitor) error {
	if !info.IsDir() {
		return v.VisitFile(path, entry{path: path, info: info})
	}

	// ReadDir closes the directory before any child is visited.
	entries, readErr := os.ReadDir(path)
	if readErr != nil && len(entries) == 0 {
		return v.VisitFileFailed(path, readErr)
	}

	if err := v.PreVisitDirectory(path, entry{path: path, info: info}); err != nil {
		if errors.Is(err, fs.SkipDir) {
			return nil
		}

		return err
	}

	for _, dirEntry := range entries {
		child := filepath.Join(path, dirEntry.Name())

		var err error

		// DirEntry.Info uses lstat for entries returned by os.ReadDir.
		childInfo, infoErr := dirEntry.Info()
		if infoErr != nil {
			err = v.VisitFileFailed(child, infoErr)
		} else {
			err = walk(child, childInfo, v)
		}

		if err != nil {
			if errors.Is(err, fs.SkipDir) {
				break
			}

			return err
		}
	}

	if err := v.PostVisitDirectory(path, readErr); err != nil && !errors.Is(err, fs.SkipDir) {
		return err
	}

	return nil
}
