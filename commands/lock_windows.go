//go:build windows

package commands

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/windows"
)

// locked returns true if err means the file is open in another process or not writable by
// this user.
func locked(err error) bool {
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, windows.ERROR_SHARING_VIOLATION) ||
		errors.Is(err, windows.ERROR_LOCK_VIOLATION) ||
		errors.Is(err, windows.ERROR_ACCESS_DENIED)
}
