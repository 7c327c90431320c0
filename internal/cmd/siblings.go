package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewSiblingsCommand creates the siblings subcommand
func NewSiblingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "siblings <file>",
		Short: "List the same string table in every sibling locale folder",
		Long: `Given a file inside a locale folder, such as
App/Base.lproj/Main.storyboard, list the path of the matching string table
(Main.strings) in every other *.lproj folder next to it. Base.lproj is
skipped. Candidate paths are listed whether or not the file exists yet.

Exit code: 1 if the path is not of the form <dir>/<locale>.lproj/<file>`,
		Args: cobra.ExactArgs(1),
		RunE: runSiblings,
	}

	return cmd
}

func runSiblings(cmd *cobra.Command, args []string) error {
	knownPath := args[0]
	s, err := newSession(cmd, filepath.Dir(knownPath))
	if err != nil {
		return err
	}

	paths, err := s.searcher.SiblingLocalePaths(knownPath)
	if err != nil {
		return fmt.Errorf("cannot resolve sibling locales: %w", err)
	}
	s.log.LogInfo(fmt.Sprintf("Resolved %d sibling string tables for %s", len(paths), knownPath))

	return s.printer.Print(s.stdout, paths)
}
