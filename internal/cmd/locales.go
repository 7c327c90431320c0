package cmd

import (
	"github.com/harrison/lprojfind/internal/lproj"
	"github.com/spf13/cobra"
)

// NewLocalesCommand creates the locales subcommand
func NewLocalesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locales [root]",
		Short: "List locale folders",
		Long: `List every *.lproj folder below root (default: current directory),
except Base.lproj. With --ids only the locale identifiers are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLocales,
	}

	cmd.Flags().Bool("ids", false, "Print locale identifiers (en, de) instead of folder paths")

	return cmd
}

func runLocales(cmd *cobra.Command, args []string) error {
	root := rootArg(args)
	s, err := newSession(cmd, root)
	if err != nil {
		return err
	}

	ids, _ := cmd.Flags().GetBool("ids")
	return s.search("locale folders", root, "folders", func() []string {
		folders := s.searcher.FindLocaleFolders(root)
		if !ids {
			return folders
		}
		locales := make([]string, 0, len(folders))
		for _, folder := range folders {
			locales = append(locales, lproj.Locale(folder))
		}
		return locales
	})
}
