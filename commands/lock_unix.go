//go:build unix

package commands

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// locked returns true if err means the file is in use or not writable by this user.
func locked(err error) bool {
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, unix.EACCES) ||
		errors.Is(err, unix.EPERM) ||
		errors.Is(err, unix.ETXTBSY) ||
		errors.Is(err, unix.EROFS)
}
