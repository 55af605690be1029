package wf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStat(t *testing.T) {
	t.Parallel()

	t.Run("regular file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "f.txt")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("writing file: %v", err)
		}

		res, err := Stat(path)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if res.Name != "f.txt" {
			t.Errorf("Name = %q, want f.txt", res.Name)
		}
		if !res.Attributes.Has(AttrArchive) {
			t.Errorf("Attributes = %s, want ARCHIVE set", res.Attributes)
		}
		if res.Size() != 5 {
			t.Errorf("Size() = %d, want 5", res.Size())
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		res, err := Stat(dir)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if !res.Attributes.Has(AttrDirectory) {
			t.Errorf("Attributes = %s, want DIRECTORY set", res.Attributes)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, err := Stat("/no/such/path")
		if !errors.Is(err, StatusNotFound) {
			t.Errorf("Stat() error = %v, want StatusNotFound", err)
		}
	})
}
