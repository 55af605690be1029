//go:build !unix

package wf

import (
	"io/fs"
	"time"
)

// statTimes on platforms without Stat_t access falls back to the
// modification time for all three timestamps.
func statTimes(info fs.FileInfo) (atime, mtime, ctime time.Time) {
	mtime = info.ModTime()
	return mtime, mtime, mtime
}
