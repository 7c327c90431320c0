// Package lproj finds localization resources inside an Xcode project tree.
//
// Locale folders follow the "<locale>.lproj" naming convention, with
// "Base.lproj" holding the development (base) localization. The package
// answers four questions about a project root:
//
//   - which interface-builder documents (.storyboard, .xib) live in a locale folder
//   - which string tables (.strings) live in a locale folder
//   - where a string table of a given name lives, across all locales
//   - where every string table lives, across all locales
//
// and, given one known string table, derives the paths the same table
// would have in every other locale folder next to it.
//
// # Traversal
//
// Walk descends the whole tree and skips the subtrees of a fixed set of
// directory names (.git, Carthage, Pods, build, docs). Only regular files are
// reported. A missing or unreadable root yields no files; the failure is kept
// in WalkResult.Errors and never surfaces from the search functions, which
// therefore cannot tell "no matches" apart from "root unreadable".
//
// # Matching
//
// Rules are matched case-insensitively against the part of a path below the
// search root, so the root's own name never satisfies a rule meant for a
// subdirectory. Locale and file names are compared literally, and so is the
// "." in ".lproj": "enXlproj" is not a locale folder.
//
// # Usage
//
//	files := lproj.FindAllStringsFilesWithLocale("/path/to/App", "de")
//	for _, f := range files {
//	    fmt.Println(f)
//	}
//
//	siblings, err := lproj.SiblingLocalePaths("/path/to/App/Base.lproj/Main.strings")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The package never writes to the filesystem.
package lproj
