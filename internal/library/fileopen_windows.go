//go:build windows

package library

import "os"

// createNoFollow creates a fresh temp file.
// On Windows, O_NOFOLLOW is not available; O_EXCL still refuses an existing path.
func createNoFollow(path string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
}
