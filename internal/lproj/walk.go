package lproj

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// ignoredDirs holds directory names whose subtrees are never searched:
// version control metadata, dependency manager checkouts, build output and docs.
var ignoredDirs = map[string]bool{
	".git":     true,
	"Carthage": true,
	"Pods":     true,
	"build":    true,
	"docs":     true,
}

// IgnoredDirs returns the names of directories skipped during traversal, sorted.
func IgnoredDirs() []string {
	names := make([]string, 0, len(ignoredDirs))
	for name := range ignoredDirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WalkResult contains the results of a tree walk
type WalkResult struct {
	// Root is the absolute path the walk started from
	Root string
	// Files contains the absolute paths of all regular files, in traversal order
	Files []string
	// Dirs contains the absolute paths of all directories descended into, root excluded
	Dirs []string
	// Errors contains the non-fatal errors encountered while walking
	Errors []error
}

// Walk recursively collects every regular file below root, skipping ignored
// directories. It never fails: a missing or unreadable root produces an empty
// result with the cause recorded in Errors.
func Walk(root string) *WalkResult {
	result := &WalkResult{
		Files:  make([]string, 0),
		Dirs:   make([]string, 0),
		Errors: make([]error, 0),
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		result.Root = root
		result.Errors = append(result.Errors, fmt.Errorf("failed to resolve root %s: %w", root, err))
		return result
	}
	result.Root = absRoot

	// WalkDir does not descend into a symlinked root, so walk its target and
	// report paths under the root as given
	walkRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", absRoot, err))
		return result
	}

	filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		// The root itself is never reported nor pruned
		if path == walkRoot {
			return nil
		}
		if walkRoot != absRoot {
			rel, err := filepath.Rel(walkRoot, path)
			if err != nil {
				result.Errors = append(result.Errors, err)
				return nil
			}
			path = filepath.Join(absRoot, rel)
		}

		if d.IsDir() {
			if ignoredDirs[d.Name()] {
				return filepath.SkipDir
			}
			result.Dirs = append(result.Dirs, path)
			return nil
		}

		if d.Type().IsRegular() {
			result.Files = append(result.Files, path)
		}
		return nil
	})

	return result
}
