package rename

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
}

func names(t *testing.T, dir string) map[string]bool {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string]bool)
	for _, entry := range entries {
		got[entry.Name()] = true
	}
	return got
}

func TestApplyReplacesSubstring(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "home video.mp4")
	touch(t, dir, "trip video.mp4")
	touch(t, dir, "readme.txt")

	results, err := Apply(dir, "*.mp4", " video", "")
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("unexpected error for %s: %v", res.OldName, res.Err)
		}
	}

	got := names(t, dir)
	for _, want := range []string{"home.mp4", "trip.mp4", "readme.txt"} {
		if !got[want] {
			t.Errorf("expected %s to exist, have %v", want, got)
		}
	}
}

func TestApplySkipsUnchangedNames(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clean.mp4")

	results, err := Apply(dir, "*.mp4", "xyz", "")
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results for unchanged names, got %d", len(results))
	}
}

func TestApplyCollisionIsPerFileError(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a_old.txt")
	touch(t, dir, "a.txt")
	touch(t, dir, "b_old.txt")

	results, err := Apply(dir, "*_old.txt", "_old", "")
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	var failures int
	for _, res := range results {
		if res.Err != nil {
			failures++
			if res.OldName != "a_old.txt" {
				t.Errorf("unexpected failure for %s", res.OldName)
			}
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 collision failure, got %d", failures)
	}

	got := names(t, dir)
	if !got["b.txt"] {
		t.Error("sweep should continue past a collision")
	}
	if !got["a_old.txt"] {
		t.Error("colliding file must be left in place")
	}
}

func TestApplyErrors(t *testing.T) {
	if _, err := Apply(filepath.Join(t.TempDir(), "missing"), "*", "a", ""); err == nil {
		t.Error("expected error for missing directory")
	}
	if _, err := Apply(t.TempDir(), "*", "", ""); err == nil {
		t.Error("expected error for empty substring")
	}
	dir := t.TempDir()
	touch(t, dir, "x.txt")
	if _, err := Apply(dir, "[", "a", ""); err == nil {
		t.Error("expected error for malformed pattern")
	}
}
