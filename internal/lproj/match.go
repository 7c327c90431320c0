package lproj

import (
	"fmt"
	"strings"
)

const (
	// FolderSuffix is appended to a locale identifier to form its folder name
	FolderSuffix = ".lproj"
	// BaseLocale identifies the development localization
	BaseLocale = "Base"
	// BaseFolder is the folder of the base localization
	BaseFolder = BaseLocale + FolderSuffix

	// StringsExt is the extension of string table files
	StringsExt = ".strings"
)

// interfaceBuilderExts are the extensions of interface-builder documents
var interfaceBuilderExts = []string{".storyboard", ".xib"}

type patternKind int

const (
	kindInterfaceBuilder patternKind = iota
	kindLocaleStrings
	kindNamedStrings
	kindAllStrings
)

// Pattern is a case-insensitive rule over the part of a path below a search
// root. It must hold through the last character of the path.
type Pattern struct {
	kind     patternKind
	locale   string
	fileName string
}

// InterfaceBuilderPattern matches .storyboard and .xib files beneath a
// segment starting with "<locale>.lproj".
func InterfaceBuilderPattern(locale string) Pattern {
	return Pattern{kind: kindInterfaceBuilder, locale: locale}
}

// LocaleStringsPattern matches .strings files beneath a segment starting
// with "<locale>.lproj".
func LocaleStringsPattern(locale string) Pattern {
	return Pattern{kind: kindLocaleStrings, locale: locale}
}

// NamedStringsPattern matches "<fileName>.strings" directly inside any
// locale folder.
func NamedStringsPattern(fileName string) Pattern {
	return Pattern{kind: kindNamedStrings, fileName: fileName}
}

// AllStringsPattern matches every .strings file inside any locale folder.
func AllStringsPattern() Pattern {
	return Pattern{kind: kindAllStrings}
}

// Match reports whether fullPath, a path found under root, satisfies the
// pattern. Only the part of fullPath after root is considered.
func (p Pattern) Match(fullPath, root string) bool {
	if len(fullPath) < len(root) {
		return false
	}
	return p.MatchSuffix(fullPath[len(root):])
}

// MatchSuffix reports whether a root-relative path suffix satisfies the pattern.
func (p Pattern) MatchSuffix(suffix string) bool {
	s := strings.ToLower(suffix)

	switch p.kind {
	case kindInterfaceBuilder:
		folder := strings.ToLower(p.locale + FolderSuffix)
		for _, ext := range interfaceBuilderExts {
			if strings.HasSuffix(s, ext) && hasSegmentPrefix(s, folder, len(s)-len(ext)) {
				return true
			}
		}
		return false

	case kindLocaleStrings:
		folder := strings.ToLower(p.locale + FolderSuffix)
		return strings.HasSuffix(s, StringsExt) && hasSegmentPrefix(s, folder, len(s)-len(StringsExt))

	case kindNamedStrings:
		return strings.HasSuffix(s, strings.ToLower(FolderSuffix+"/"+p.fileName+StringsExt))

	case kindAllStrings:
		if !strings.HasSuffix(s, StringsExt) {
			return false
		}
		// At least one character between the folder and the extension
		idx := strings.Index(s, FolderSuffix+"/")
		return idx >= 0 && idx+len(FolderSuffix)+1 < len(s)-len(StringsExt)
	}

	return false
}

// hasSegmentPrefix reports whether some path segment of s starts with prefix
// and the prefix ends at or before limit. A segment starts at the beginning
// of s or right after a slash.
func hasSegmentPrefix(s, prefix string, limit int) bool {
	for start := 0; start+len(prefix) <= limit; {
		if strings.HasPrefix(s[start:], prefix) {
			return true
		}
		next := strings.IndexByte(s[start:], '/')
		if next < 0 {
			return false
		}
		start += next + 1
	}
	return false
}

func (p Pattern) String() string {
	switch p.kind {
	case kindInterfaceBuilder:
		return fmt.Sprintf("interface-builder files in %s%s", p.locale, FolderSuffix)
	case kindLocaleStrings:
		return fmt.Sprintf("string tables in %s%s", p.locale, FolderSuffix)
	case kindNamedStrings:
		return fmt.Sprintf("%s%s in any locale", p.fileName, StringsExt)
	case kindAllStrings:
		return "string tables in any locale"
	}
	return "unknown pattern"
}
