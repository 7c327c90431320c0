package cmd

import (
	"github.com/harrison/lprojfind/internal/lproj"
	"github.com/spf13/cobra"
)

// NewIBCommand creates the ib subcommand
func NewIBCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ib [root]",
		Short: "List interface-builder files in a locale folder",
		Long: `List every .storyboard and .xib file inside <locale>.lproj folders
below root (default: current directory).

The locale defaults to default_locale from the config file, which is
Base unless configured otherwise.

Examples:
  lprojfind ib
  lprojfind ib ./MyApp --locale en`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIB,
	}

	cmd.Flags().String("locale", "", "Locale identifier, e.g. en or Base")

	return cmd
}

func runIB(cmd *cobra.Command, args []string) error {
	root := rootArg(args)
	s, err := newSession(cmd, root)
	if err != nil {
		return err
	}

	locale := s.cfg.DefaultLocale
	if cmd.Flags().Changed("locale") {
		locale, _ = cmd.Flags().GetString("locale")
	}

	return s.search(lproj.InterfaceBuilderPattern(locale).String(), root, "files", func() []string {
		return s.searcher.FindAllInterfaceBuilderFiles(root, locale)
	})
}
