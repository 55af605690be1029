package wf

import (
	"errors"
	"io/fs"
	"syscall"
)

// Status values mirror the error codes of the emulated search API.
// They are sentinel errors; callers test them with errors.Is.
var (
	// StatusInvalidArgument reports a malformed pattern path: no
	// separator, or an empty pattern after the last separator.
	StatusInvalidArgument = errors.New("invalid search pattern")

	// StatusNotFound reports that neither the split directory nor the
	// whole-path fallback could be opened.
	StatusNotFound = errors.New("path not found")

	// StatusAccessDenied reports a permission failure from the OS.
	StatusAccessDenied = errors.New("access denied")

	// StatusOutOfMemory exists for status-code compatibility with the
	// emulated API. Nothing in this package produces it.
	StatusOutOfMemory = errors.New("not enough memory")

	// StatusInvalidHandle reports an operation on a handle that was
	// never issued, or was already closed.
	StatusInvalidHandle = errors.New("invalid search handle")

	// StatusNoMoreFiles is the terminal, non-error signal: the
	// enumeration is exhausted. Repeated calls keep reporting it.
	StatusNoMoreFiles = errors.New("no more files")

	// StatusMetadataUnavailable records a per-entry stat failure. It is
	// never surfaced through Next; the entry is skipped and the status
	// is retrievable via LastStatus.
	StatusMetadataUnavailable = errors.New("file metadata unavailable")
)

// statusFromError maps an OS error from a stat-style query to a status
// sentinel, the way the emulated API maps errno values to error codes.
func statusFromError(err error) error {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		if errno, ok := perr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOENT, syscall.ENOTDIR:
				return StatusNotFound
			case syscall.EACCES, syscall.EPERM:
				return StatusAccessDenied
			case syscall.ENOMEM:
				return StatusOutOfMemory
			}
		}
	}
	if errors.Is(err, fs.ErrNotExist) {
		return StatusNotFound
	}
	if errors.Is(err, fs.ErrPermission) {
		return StatusAccessDenied
	}
	return StatusMetadataUnavailable
}
