//go:build unix

package wf

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestSearch_Next_SkipsNamedPipes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plain.dat"), []byte("x"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if err := syscall.Mkfifo(filepath.Join(dir, "pipe.dat"), 0644); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	s, err := NewSearch(filepath.Join(dir, "*.dat"))
	if err != nil {
		t.Fatalf("NewSearch() error = %v", err)
	}
	defer s.Close()

	results := collect(t, s)
	if _, ok := results["pipe.dat"]; ok {
		t.Error("named pipe was returned by the enumeration")
	}
	if _, ok := results["plain.dat"]; !ok {
		t.Errorf("plain.dat missing from %v", names(results))
	}
	if len(results) != 1 {
		t.Errorf("enumerated %v, want only plain.dat", names(results))
	}
}
