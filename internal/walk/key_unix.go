//go:build !windows

package walk

import (
	"fmt"
	"io/fs"
	"syscall"
)

// fileKey reads the device and inode numbers from the lstat result.
func fileKey(path string, info fs.FileInfo) (FileKey, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return FileKey{}, fmt.Errorf("reading identity of %q: unsupported stat type %T", path, info.Sys())
	}

	// Dev and Ino are not uint64 on all platforms.
	return FileKey{Device: uint64(st.Dev), Inode: uint64(st.Ino)}, nil //nolint:unconvert // platform dependent
}
