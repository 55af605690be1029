package wf

import (
	"fmt"
	"os"
	"path/filepath"
)

// Stat synthesizes the attribute record for a single path without
// running an enumeration. The emulated API derives its one-shot
// attribute query from the same record the search produces.
func Stat(path string) (*FindResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, statusFromError(err))
	}
	return newFindResult(filepath.Base(path), info), nil
}
