package mdstrip

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestDropLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"drop_two", "# Title\n\nbody line\nmore\n", 2, "body line\nmore\n"},
		{"drop_zero", "a\nb\n", 0, "a\nb\n"},
		{"exact_count", "a\nb\n", 2, ""},
		{"fewer_lines_than_n", "only one line\n", 2, ""},
		{"no_trailing_newline", "a\nb\nc", 2, "c"},
		{"empty_file", "", 2, ""},
		{"blank_lines_count", "\n\nkeep\n", 2, "keep\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(dropLines([]byte(tt.input), tt.n)); got != tt.want {
				t.Errorf("dropLines(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestStripDirectory(t *testing.T) {
	dir := t.TempDir()
	md1 := writeFile(t, dir, "one.md", "# One\n\ncontent one\n")
	md2 := writeFile(t, dir, "two.md", "# Two\n\ncontent two\n")
	txt := writeFile(t, dir, "notes.txt", "# Notes\n\nleave me alone\n")

	results, err := Strip(dir, ".md", 2)
	if err != nil {
		t.Fatalf("Strip returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("unexpected per-file error for %s: %v", res.Path, res.Err)
		}
	}

	if got := readFile(t, md1); got != "content one\n" {
		t.Errorf("one.md = %q, want %q", got, "content one\n")
	}
	if got := readFile(t, md2); got != "content two\n" {
		t.Errorf("two.md = %q, want %q", got, "content two\n")
	}
	if got := readFile(t, txt); got != "# Notes\n\nleave me alone\n" {
		t.Errorf("non-markdown file was modified: %q", got)
	}
}

func TestStripSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested.md"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "real.md", "a\nb\nc\n")

	results, err := Strip(dir, ".md", 2)
	if err != nil {
		t.Fatalf("Strip returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestStripErrors(t *testing.T) {
	if _, err := Strip(filepath.Join(t.TempDir(), "missing"), ".md", 2); err == nil {
		t.Error("expected error for missing directory")
	}
	if _, err := Strip(t.TempDir(), ".md", -1); err == nil {
		t.Error("expected error for negative line count")
	}
}
