package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for lprojfind
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lprojfind",
		Short: "Locate localization resources in Xcode project trees",
		Long: `lprojfind searches a project tree for the localization resources
kept in *.lproj locale folders: interface-builder files (.storyboard, .xib)
and string tables (.strings).

Dependency and build folders (.git, Carthage, Pods, build, docs) are never
searched. Every result is printed as an absolute path.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the returned error
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: nearest .lprojfind/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level on stderr: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("format", "", "Output format: plain, json, yaml")
	cmd.PersistentFlags().String("color", "", "Color output: auto, always, never")

	// Add subcommands
	cmd.AddCommand(NewIBCommand())
	cmd.AddCommand(NewStringsCommand())
	cmd.AddCommand(NewSiblingsCommand())
	cmd.AddCommand(NewLocalesCommand())

	return cmd
}
