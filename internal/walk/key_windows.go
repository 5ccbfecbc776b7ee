//go:build windows

package walk

import (
	"fmt"
	"io/fs"

	"golang.org/x/sys/windows"
)

// fileKey opens the entry without following reparse points and reads its
// volume serial number and file index. The handle is closed before returning.
func fileKey(path string, _ fs.FileInfo) (FileKey, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return FileKey{}, fmt.Errorf("reading identity of %q: %w", path, err)
	}

	handle, err := windows.CreateFile(
		name,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OPEN_REPARSE_POINT,
		0,
	)
	if err != nil {
		return FileKey{}, fmt.Errorf("opening %q: %w", path, err)
	}
	defer windows.CloseHandle(handle) //nolint:errcheck // Read-only handle

	var data windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(handle, &data); err != nil {
		return FileKey{}, fmt.Errorf("reading identity of %q: %w", path, err)
	}

	return FileKey{
		Device: uint64(data.VolumeSerialNumber),
		Inode:  uint64(data.FileIndexHigh)<<32 | uint64(data.FileIndexLow),
	}, nil
}
