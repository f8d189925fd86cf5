// Package mdstrip removes leading lines from markdown files in a directory,
// rewriting each file in place.
package mdstrip

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultLines matches the journal-cleanup workflow this grew out of: a title
// line plus the blank line after it.
const DefaultLines = 2

type Result struct {
	Path string
	Err  error
}

// Strip drops the first n lines from every file in dir whose name ends with
// ext (non-recursive). A file shorter than n lines becomes empty. Per-file
// failures are recorded and the sweep continues.
func Strip(dir, ext string, n int) ([]Result, error) {
	if n < 0 {
		return nil, fmt.Errorf("line count must not be negative: %d", n)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}
	var results []Result
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		err := stripFile(path, n)
		if err != nil {
			log.Debug().Str("op", "mdstrip").Err(err).Msgf("Skipping %s", path)
		}
		results = append(results, Result{Path: path, Err: err})
	}
	return results, nil
}

func stripFile(path string, n int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, dropLines(data, n), info.Mode().Perm())
}

// dropLines returns data without its first n lines. The final line may lack a
// trailing newline and still counts as a line.
func dropLines(data []byte, n int) []byte {
	offset := 0
	for i := 0; i < n; i++ {
		next := -1
		for i := offset; i < len(data); i++ {
			if data[i] == '\n' {
				next = i + 1
				break
			}
		}
		if next == -1 {
			return nil
		}
		offset = next
	}
	return data[offset:]
}
