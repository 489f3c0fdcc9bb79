//go:build !windows

package library

import (
	stderrors "errors"
	"os"
	"syscall"

	"github.com/hpungsan/wodgen/internal/errors"
)

// createNoFollow creates a fresh temp file with O_NOFOLLOW|O_EXCL so a
// pre-planted symlink in the library or workouts dir is never written through.
func createNoFollow(path string, perm os.FileMode) (*os.File, error) {
	flag := os.O_CREATE | os.O_EXCL | os.O_WRONLY | syscall.O_NOFOLLOW | syscall.O_CLOEXEC
	fd, err := syscall.Open(path, flag, uint32(perm))
	if err != nil {
		if stderrors.Is(err, syscall.ELOOP) {
			return nil, errors.NewInvalidRequest("cannot write to symlink: " + path)
		}
		return nil, err
	}
	return os.NewFile(uintptr(fd), path), nil
}
