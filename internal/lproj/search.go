package lproj

import (
	"fmt"
)

// Logger receives diagnostics that never reach a search result.
// logger.ConsoleLogger satisfies it.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Searcher runs searches and reports folded traversal errors to a Logger.
// The zero value and a Searcher with a nil logger are silent.
type Searcher struct {
	logger Logger
}

// NewSearcher creates a Searcher reporting to logger, which may be nil.
func NewSearcher(logger Logger) *Searcher {
	return &Searcher{logger: logger}
}

var defaultSearcher = NewSearcher(nil)

// FindAllInterfaceBuilderFiles returns every .storyboard and .xib file in
// the given locale's folders below root. An empty locale means BaseLocale.
func (s *Searcher) FindAllInterfaceBuilderFiles(root, locale string) []string {
	if locale == "" {
		locale = BaseLocale
	}
	return s.findAllFilePaths(root, InterfaceBuilderPattern(locale))
}

// FindAllStringsFilesWithLocale returns every .strings file in the given
// locale's folders below root.
func (s *Searcher) FindAllStringsFilesWithLocale(root, locale string) []string {
	return s.findAllFilePaths(root, LocaleStringsPattern(locale))
}

// FindAllStringsFilesNamed returns "<fileName>.strings" from every locale
// folder below root that has it.
func (s *Searcher) FindAllStringsFilesNamed(root, fileName string) []string {
	return s.findAllFilePaths(root, NamedStringsPattern(fileName))
}

// FindAllStringsFiles returns every .strings file inside any locale folder below root.
func (s *Searcher) FindAllStringsFiles(root string) []string {
	return s.findAllFilePaths(root, AllStringsPattern())
}

func (s *Searcher) findAllFilePaths(root string, pattern Pattern) []string {
	result := Walk(root)
	s.reportErrors(result)

	paths := make([]string, 0)
	for _, file := range result.Files {
		if pattern.Match(file, result.Root) {
			paths = append(paths, file)
		}
	}

	s.debugf("%s: %d of %d files matched under %s", pattern, len(paths), len(result.Files), result.Root)
	return paths
}

func (s *Searcher) reportErrors(result *WalkResult) {
	for _, err := range result.Errors {
		s.warnf("skipped: %v", err)
	}
}

func (s *Searcher) debugf(format string, args ...interface{}) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.LogDebug(fmt.Sprintf(format, args...))
}

func (s *Searcher) warnf(format string, args ...interface{}) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.LogWarn(fmt.Sprintf(format, args...))
}

// FindAllInterfaceBuilderFiles runs Searcher.FindAllInterfaceBuilderFiles without logging.
func FindAllInterfaceBuilderFiles(root, locale string) []string {
	return defaultSearcher.FindAllInterfaceBuilderFiles(root, locale)
}

// FindAllStringsFilesWithLocale runs Searcher.FindAllStringsFilesWithLocale without logging.
func FindAllStringsFilesWithLocale(root, locale string) []string {
	return defaultSearcher.FindAllStringsFilesWithLocale(root, locale)
}

// FindAllStringsFilesNamed runs Searcher.FindAllStringsFilesNamed without logging.
func FindAllStringsFilesNamed(root, fileName string) []string {
	return defaultSearcher.FindAllStringsFilesNamed(root, fileName)
}

// FindAllStringsFiles runs Searcher.FindAllStringsFiles without logging.
func FindAllStringsFiles(root string) []string {
	return defaultSearcher.FindAllStringsFiles(root)
}
