package wf

import (
	"io/fs"
	"strings"
)

// MaxNameLength bounds the Name field of a FindResult, matching the
// fixed-size name buffer of the emulated record layout.
const MaxNameLength = 260

// FindResult is the value record returned for each matching entry.
// Every field is recomputed from a fresh stat snapshot on each match;
// nothing is cached between calls.
type FindResult struct {
	Attributes     Attribute
	CreationTime   Filetime
	LastAccessTime Filetime
	LastWriteTime  Filetime
	FileSizeHigh   uint32
	FileSizeLow    uint32
	Name           string
}

// Size reassembles the 64-bit file size from its split halves.
func (r *FindResult) Size() int64 {
	return int64(uint64(r.FileSizeHigh)<<32 | uint64(r.FileSizeLow))
}

// newFindResult synthesizes the result record for one directory entry
// from its name and a stat snapshot.
func newFindResult(name string, info fs.FileInfo) *FindResult {
	var attrs Attribute

	if info.IsDir() {
		attrs |= AttrDirectory
	}
	if attrs == 0 {
		attrs = AttrArchive
	}
	if isHiddenName(name) {
		attrs |= AttrHidden
	}
	if info.Mode().Perm()&0o200 == 0 {
		attrs |= AttrReadOnly
	}

	atime, mtime, ctime := statTimes(info)
	size := uint64(info.Size())

	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}

	return &FindResult{
		Attributes:     attrs,
		CreationTime:   FiletimeFromTime(ctime),
		LastAccessTime: FiletimeFromTime(atime),
		LastWriteTime:  FiletimeFromTime(mtime),
		FileSizeHigh:   uint32(size >> 32),
		FileSizeLow:    uint32(size & 0xFFFFFFFF),
		Name:           name,
	}
}

// isHiddenName reports whether a name gets the hidden bit: it starts
// with '.' and is not the "." or ".." entry itself.
func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
