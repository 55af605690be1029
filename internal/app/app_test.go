package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wfind/internal/config"
	"wfind/internal/history"
	"wfind/internal/wf"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	return &config.Config{
		HostID:  "test-host",
		BaseDir: base,
		LogDir:  filepath.Join(base, "log"),
		History: config.HistoryConfig{Type: "memory"},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := NewApp(cfg, "List")
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func mkTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestApp_List(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApp(t, cfg)
	dir := mkTree(t)

	results, err := a.List(filepath.Join(dir, "*.txt"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(results))
	}

	records, err := a.History(10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("History() returned %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Status != history.StatusCompleted {
		t.Errorf("record status = %q, want %q", rec.Status, history.StatusCompleted)
	}
	if rec.Matches != 2 {
		t.Errorf("record matches = %d, want 2", rec.Matches)
	}
	if rec.Pattern != filepath.Join(dir, "*.txt") {
		t.Errorf("record pattern = %q, want %q", rec.Pattern, filepath.Join(dir, "*.txt"))
	}

	// The structured log ends up under the configured log dir.
	if _, err := os.Stat(filepath.Join(cfg.LogDir, "wfind.log")); err != nil {
		t.Errorf("log file missing: %v", err)
	}
}

func TestApp_List_ExcludeAndHidden(t *testing.T) {
	cfg := testConfig(t)
	cfg.Search.Exclude = []string{"b.*"}
	cfg.Search.SkipHidden = true
	a := newTestApp(t, cfg)
	dir := mkTree(t)

	results, err := a.List(filepath.Join(dir, "*"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(results) != 1 || results[0].Name != "a.txt" {
		var got []string
		for _, r := range results {
			got = append(got, r.Name)
		}
		t.Errorf("List() = %v, want [a.txt]", got)
	}
}

func TestApp_List_FailureRecorded(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApp(t, cfg)

	_, err := a.List("/no/such/dir/*")
	if !errors.Is(err, wf.StatusNotFound) {
		t.Fatalf("List() error = %v, want StatusNotFound", err)
	}

	records, err := a.History(10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("History() returned %d records, want 1", len(records))
	}
	if records[0].Status != history.StatusFailed {
		t.Errorf("record status = %q, want %q", records[0].Status, history.StatusFailed)
	}
}

func TestApp_Attributes(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApp(t, cfg)
	dir := mkTree(t)

	res, err := a.Attributes(filepath.Join(dir, ".hidden"))
	if err != nil {
		t.Fatalf("Attributes() error = %v", err)
	}
	if !res.Attributes.Has(wf.AttrHidden) {
		t.Errorf("Attributes = %s, want HIDDEN set", res.Attributes)
	}
}
