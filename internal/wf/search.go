package wf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// searchMagic marks a live Search. It is set on successful creation,
// checked on every operation, and cleared by Close so that a second
// Close (or a Next after Close) fails instead of touching a released
// directory stream.
const searchMagic uint32 = 0x57465253 // "WFRS"

// Search is one in-progress directory enumeration. It owns the base
// directory path, the glob pattern, and an open directory stream, and
// yields a lazy, forward-only sequence of FindResult values.
//
// A Search is not safe for concurrent use: the directory stream
// position is shared mutable state. Independent Search values may be
// used from different goroutines freely.
type Search struct {
	magic   uint32
	path    string
	pattern string
	dir     *os.File
	done    bool
	last    error
}

// NewSearch begins an enumeration from a pattern path: a directory and
// a trailing glob pattern joined by the path separator, e.g.
// "/tmp/x/*.txt".
//
// The input is split at the last separator. No separator, or an empty
// pattern after it, fails with StatusInvalidArgument. If the split-off
// directory cannot be opened, one fallback is attempted: when the
// entire input names an existing directory it is opened directly with
// the pattern set to "*". Some filesystem roots are not listable in
// their parent directory, so the direct open is tried as a recovery
// path. If both attempts fail, NewSearch fails with StatusNotFound.
func NewSearch(patternPath string) (*Search, error) {
	sep := strings.LastIndexByte(patternPath, os.PathSeparator)
	if sep < 0 {
		return nil, fmt.Errorf("%q: %w", patternPath, StatusInvalidArgument)
	}
	pattern := patternPath[sep+1:]
	if pattern == "" {
		return nil, fmt.Errorf("%q: empty pattern: %w", patternPath, StatusInvalidArgument)
	}

	dirPath := patternPath[:sep]
	if dirPath == "" {
		dirPath = string(os.PathSeparator)
	}

	dir, err := openDir(dirPath)
	if err != nil {
		// Two-step attempt sequence: the fallback fires only after a
		// failed open of the split form, never on a missing separator.
		if info, serr := os.Stat(patternPath); serr == nil && info.IsDir() {
			if fdir, ferr := openDir(patternPath); ferr == nil {
				dir = fdir
				dirPath = patternPath
				pattern = "*"
				err = nil
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%q: %w", patternPath, StatusNotFound)
	}

	return &Search{
		magic:   searchMagic,
		path:    dirPath,
		pattern: pattern,
		dir:     dir,
	}, nil
}

// openDir opens path as a directory stream, rejecting non-directories
// the way opendir does.
func openDir(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s: not a directory", path)
	}
	return f, nil
}

// valid checks the magic tag without touching any owned resource.
func (s *Search) valid() bool {
	return s != nil && s.magic == searchMagic
}

// Path returns the effective base directory of the enumeration.
func (s *Search) Path() string { return s.path }

// Pattern returns the effective glob pattern.
func (s *Search) Pattern() string { return s.pattern }

// LastStatus returns the most recently recorded status: nil before any
// failure, StatusNoMoreFiles once the sequence has terminated, or a
// StatusMetadataUnavailable-class status when the last scanned entry
// was skipped over a failed stat.
func (s *Search) LastStatus() error {
	if !s.valid() {
		return StatusInvalidHandle
	}
	return s.last
}

// Next advances the enumeration and returns the next matching entry.
//
// Entries are read from the directory stream in OS iteration order,
// which is unspecified and not stable across platforms. Names that do
// not match the pattern are skipped. For a match, a fresh stat of the
// full path synthesizes the result; if the stat fails the entry is
// discarded, the mapped status is recorded, and scanning continues;
// a single bad entry never aborts the enumeration. Named-pipe entries
// are silently skipped. When the stream is exhausted Next returns
// StatusNoMoreFiles, and keeps returning it on every later call.
func (s *Search) Next() (*FindResult, error) {
	if !s.valid() {
		return nil, StatusInvalidHandle
	}
	if s.done {
		return nil, StatusNoMoreFiles
	}

	for {
		names, err := s.dir.Readdirnames(1)
		if err != nil || len(names) == 0 {
			if err != nil && !errors.Is(err, io.EOF) {
				// Treat a broken stream as exhausted; the terminal
				// state must stay idempotent either way.
				s.last = statusFromError(err)
			} else {
				s.last = StatusNoMoreFiles
			}
			s.done = true
			return nil, StatusNoMoreFiles
		}

		name := names[0]
		if !matchName(name, s.pattern) {
			continue
		}

		fullPath := joinEntry(s.path, name)
		info, err := os.Stat(fullPath)
		if err != nil {
			s.last = statusFromError(err)
			continue
		}

		// Named-pipe special files are not exposed by this layer.
		if info.Mode()&os.ModeNamedPipe != 0 {
			continue
		}

		return newFindResult(name, info), nil
	}
}

// Close releases the directory stream and the owned state exactly
// once. A Search that was never returned by a successful NewSearch, or
// was already closed, fails with StatusInvalidHandle and has no side
// effects.
func (s *Search) Close() error {
	if !s.valid() {
		return StatusInvalidHandle
	}
	s.magic = 0
	s.path = ""
	s.pattern = ""
	s.done = true
	if s.dir != nil {
		err := s.dir.Close()
		s.dir = nil
		return err
	}
	return nil
}

// joinEntry appends an entry name to the base path with exactly one
// separator, whether or not base already ends in one.
func joinEntry(base, name string) string {
	if strings.HasSuffix(base, string(os.PathSeparator)) {
		return base + name
	}
	return base + string(os.PathSeparator) + name
}
