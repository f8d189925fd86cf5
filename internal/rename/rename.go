// Package rename batch-renames files in a directory by substring replacement.
// The directory is always an explicit parameter; the working directory is
// never changed.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

type Result struct {
	OldName string
	NewName string
	Err     error
}

// Apply renames every file in dir matching pattern (a filepath.Match glob on
// the base name) by replacing old with new in the name. Names left unchanged
// by the replacement are skipped. An existing file at the target name is a
// per-file error; the sweep continues.
func Apply(dir, pattern, old, repl string) ([]Result, error) {
	if old == "" {
		return nil, fmt.Errorf("substring to replace must not be empty")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}
	var results []Result
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if !matched {
			continue
		}
		renamed := strings.ReplaceAll(name, old, repl)
		if renamed == name {
			continue
		}
		result := Result{OldName: name, NewName: renamed}
		target := filepath.Join(dir, renamed)
		if _, err := os.Stat(target); err == nil {
			result.Err = fmt.Errorf("target %s already exists", renamed)
		} else if err := os.Rename(filepath.Join(dir, name), target); err != nil {
			result.Err = err
		}
		if result.Err != nil {
			log.Debug().Str("op", "rename").Err(result.Err).Msgf("Skipping %s", name)
		}
		results = append(results, result)
	}
	return results, nil
}
