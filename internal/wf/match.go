package wf

import "path/filepath"

// matchName reports whether a directory entry name satisfies the glob
// pattern. Wildcards follow shell rules: '*' matches any run of
// characters, '?' matches exactly one. A malformed pattern matches
// nothing rather than failing the enumeration.
func matchName(name, pattern string) bool {
	ok, err := filepath.Match(pattern, name)
	if err != nil {
		return false
	}
	return ok
}
