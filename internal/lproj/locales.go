package lproj

import (
	"path/filepath"
	"strings"
)

// FindLocaleFolders returns every locale folder below root except Base.lproj
// (in any letter case),
// in traversal order. Ignored directories are not searched.
func (s *Searcher) FindLocaleFolders(root string) []string {
	result := Walk(root)
	s.reportErrors(result)

	folders := make([]string, 0)
	for _, dir := range result.Dirs {
		name := filepath.Base(dir)
		if isLocaleFolder(name) && !strings.EqualFold(name, BaseFolder) {
			folders = append(folders, dir)
		}
	}

	s.debugf("%d locale folders under %s", len(folders), result.Root)
	return folders
}

// Locale returns the locale identifier of a locale folder path:
// "/App/de.lproj" gives "de". Other names are returned unchanged.
func Locale(folder string) string {
	name := filepath.Base(folder)
	if !isLocaleFolder(name) {
		return name
	}
	return name[:len(name)-len(FolderSuffix)]
}

func isLocaleFolder(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), FolderSuffix)
}

// FindLocaleFolders runs Searcher.FindLocaleFolders without logging.
func FindLocaleFolders(root string) []string {
	return defaultSearcher.FindLocaleFolders(root)
}
