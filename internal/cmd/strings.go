package cmd

import (
	"github.com/harrison/lprojfind/internal/lproj"
	"github.com/spf13/cobra"
)

// NewStringsCommand creates the strings subcommand
func NewStringsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strings [root]",
		Short: "List .strings tables in locale folders",
		Long: `List .strings files inside *.lproj folders below root (default:
current directory).

Without flags every string table in every locale is listed.
  --locale L   only tables in L.lproj folders
  --name N     only N.strings, from every locale folder that has it

Examples:
  lprojfind strings
  lprojfind strings ./MyApp --locale de
  lprojfind strings --name Localizable`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStrings,
	}

	cmd.Flags().String("locale", "", "Only list tables in this locale's folders")
	cmd.Flags().String("name", "", "Only list tables with this base name (without .strings)")
	cmd.MarkFlagsMutuallyExclusive("locale", "name")

	return cmd
}

func runStrings(cmd *cobra.Command, args []string) error {
	root := rootArg(args)
	s, err := newSession(cmd, root)
	if err != nil {
		return err
	}

	var (
		pattern lproj.Pattern
		find    func() []string
	)
	switch {
	case cmd.Flags().Changed("locale"):
		locale, _ := cmd.Flags().GetString("locale")
		pattern = lproj.LocaleStringsPattern(locale)
		find = func() []string { return s.searcher.FindAllStringsFilesWithLocale(root, locale) }
	case cmd.Flags().Changed("name"):
		name, _ := cmd.Flags().GetString("name")
		pattern = lproj.NamedStringsPattern(name)
		find = func() []string { return s.searcher.FindAllStringsFilesNamed(root, name) }
	default:
		pattern = lproj.AllStringsPattern()
		find = func() []string { return s.searcher.FindAllStringsFiles(root) }
	}

	return s.search(pattern.String(), root, "files", find)
}
