package lproj

import (
	"os"
	"path"
	"strings"
)

// SiblingLocalePaths derives, from one known string table such as
// ".../App/Base.lproj/Main.strings", the paths the same table has in every
// other locale folder of ".../App". Base.lproj is never included and the
// returned paths are not checked for existence.
//
// An unreadable parent directory yields an empty list. A path without two
// segments before the file name is rejected with an *InvalidPathError.
func (s *Searcher) SiblingLocalePaths(knownPath string) ([]string, error) {
	segments := strings.Split(knownPath, "/")
	if len(segments) < 3 {
		return nil, invalidPath(knownPath, "expected <dir>/<locale>.lproj/<file>")
	}

	fileName := segments[len(segments)-1]
	if fileName == "" {
		return nil, invalidPath(knownPath, "missing file name")
	}
	baseName := trimExtension(fileName)

	// Drop the file name and its locale folder
	parent := strings.Join(segments[:len(segments)-2], "/")
	if parent == "" {
		parent = "/"
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		s.warnf("cannot list locale folders: %v", err)
		return []string{}, nil
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.Contains(name, FolderSuffix) || name == BaseFolder {
			continue
		}
		paths = append(paths, path.Join(parent, name, baseName+StringsExt))
	}

	s.debugf("%d sibling locale paths for %s", len(paths), knownPath)
	return paths, nil
}

// trimExtension removes the last dot-separated component of name.
// "a.b.strings" becomes "a.b"; a name without a dot is returned unchanged.
func trimExtension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name
	}
	return name[:idx]
}

// SiblingLocalePaths runs Searcher.SiblingLocalePaths without logging.
func SiblingLocalePaths(knownPath string) ([]string, error) {
	return defaultSearcher.SiblingLocalePaths(knownPath)
}
