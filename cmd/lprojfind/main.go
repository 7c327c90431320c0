package main

import (
	"fmt"
	"os"

	"github.com/harrison/lprojfind/internal/cmd"
	"github.com/spf13/cobra"
)

// Version is the current version of the lprojfind application
const Version = "1.0.0"

// newRootCommand builds the CLI, reporting Version unless -ldflags set
// cmd.Version at build time.
func newRootCommand() *cobra.Command {
	if cmd.Version == "dev" {
		cmd.Version = Version
	}
	return cmd.NewRootCommand()
}

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
