//go:build unix

package wf

import (
	"io/fs"
	"syscall"
	"time"
)

// statTimes extracts access, modification, and change times from a
// Unix stat snapshot. The change time stands in for creation time;
// birth time is not available on most Unix filesystems.
func statTimes(info fs.FileInfo) (atime, mtime, ctime time.Time) {
	mtime = info.ModTime()
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return mtime, mtime, mtime
	}
	atime = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	ctime = time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	return atime, mtime, ctime
}
