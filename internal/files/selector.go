// Package files selects the files a kernel run should process and pairs
// each one with the plugin that handles its extension.
package files

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/DevSymphony/symlint/internal/kernel/descriptor"
)

// DefaultInclude matches every file under the root.
const DefaultInclude = "**/*"

// Selector narrows the candidate files. An empty Include means DefaultInclude.
type Selector struct {
	Include []string
	Exclude []string
}

// Target is one file and the plugin that will process it.
type Target struct {
	Path   string `json:"path"`
	Plugin string `json:"plugin"`
}

// MatchGlob checks if a file path matches a glob pattern.
// Supports doublestar patterns (e.g., "**/*.md", "docs/**/*.txt").
func MatchGlob(filePath, pattern string) (bool, error) {
	return doublestar.Match(filepath.ToSlash(pattern), filepath.ToSlash(filePath))
}

// Excluded reports whether filePath matches any exclude pattern.
func (s *Selector) Excluded(filePath string) bool {
	if s == nil {
		return false
	}
	for _, pattern := range s.Exclude {
		if m, err := MatchGlob(filePath, pattern); err == nil && m {
			return true
		}
	}
	return false
}

func (s *Selector) includes() []string {
	if s == nil || len(s.Include) == 0 {
		return []string{DefaultInclude}
	}
	return s.Include
}

// Collect walks fsys and returns the selected regular files handled by an
// enabled plugin, sorted by path. Files with no plugin are skipped.
func Collect(fsys fs.FS, sel *Selector, plugins descriptor.PluginDescriptors) ([]Target, error) {
	var paths []string
	for _, pattern := range sel.includes() {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	return assign(paths, sel, plugins)
}

// Classify is Collect for an explicit path list, such as changed files.
// Paths must match an include pattern.
func Classify(paths []string, sel *Selector, plugins descriptor.PluginDescriptors) ([]Target, error) {
	var included []string
	for _, path := range paths {
		for _, pattern := range sel.includes() {
			m, err := MatchGlob(path, pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid include pattern: %s", pattern)
			}
			if m {
				included = append(included, path)
				break
			}
		}
	}
	return assign(included, sel, plugins)
}

func assign(paths []string, sel *Selector, plugins descriptor.PluginDescriptors) ([]Target, error) {
	seen := make(map[string]bool)
	var targets []Target
	for _, path := range paths {
		if seen[path] || sel.Excluded(path) {
			continue
		}
		seen[path] = true

		d, err := plugins.FindByExtension(filepath.Ext(path))
		if err != nil {
			return nil, err
		}
		if d == nil {
			continue
		}
		targets = append(targets, Target{Path: path, Plugin: d.ID()})
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Path < targets[j].Path })
	return targets, nil
}
