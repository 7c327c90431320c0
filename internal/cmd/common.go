package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harrison/lprojfind/internal/config"
	"github.com/harrison/lprojfind/internal/display"
	"github.com/harrison/lprojfind/internal/logger"
	"github.com/harrison/lprojfind/internal/lproj"
	"github.com/spf13/cobra"
)

// session bundles everything a subcommand needs for one invocation.
type session struct {
	cfg      *config.Config
	log      *logger.ConsoleLogger
	searcher *lproj.Searcher
	printer  display.PathPrinter
	stdout   io.Writer
	stderr   io.Writer
	// colorStderr controls warnings and log lines
	colorStderr bool
}

// newSession loads configuration for a search starting at start, applies
// explicitly set flags on top, and builds the logger and searcher.
func newSession(cmd *cobra.Command, start string) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, loadedFrom, err := config.Resolve(configPath, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Only flags the user actually set override the config file
	var logLevelPtr, formatPtr, colorPtr *string
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("format") {
		v, _ := cmd.Flags().GetString("format")
		formatPtr = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorPtr = &v
	}
	cfg.MergeWithFlags(logLevelPtr, formatPtr, colorPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	colorStderr := display.ColorEnabled(cfg.Color, fileOf(stderr))

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	log.SetColor(colorStderr)
	if loadedFrom != "" {
		log.LogDebug(fmt.Sprintf("loaded config from %s", loadedFrom))
	}

	return &session{
		cfg:      cfg,
		log:      log,
		searcher: lproj.NewSearcher(log),
		printer: display.PathPrinter{
			Format: cfg.Format,
			Color:  display.ColorEnabled(cfg.Color, fileOf(stdout)),
		},
		stdout:      stdout,
		stderr:      stderr,
		colorStderr: colorStderr,
	}, nil
}

// checkRoot warns on stderr when root cannot be searched. The search still
// runs and simply finds nothing.
func (s *session) checkRoot(root string) {
	info, err := os.Stat(root)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a directory", root)
	}
	if err == nil {
		return
	}

	warning := display.WarnUnreadableRoot(root, err)
	warning.NoColor = !s.colorStderr
	warning.Display(s.stderr)
}

// search times fn between the start and completion log lines, then prints
// its result.
func (s *session) search(what, root, noun string, fn func() []string) error {
	s.checkRoot(root)

	start := time.Now()
	s.log.LogSearchStart(what, root)
	paths := fn()
	s.log.LogSearchComplete(len(paths), noun, time.Since(start))

	return s.printer.Print(s.stdout, paths)
}

// rootArg returns the search root from positional args, defaulting to ".".
func rootArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}

func fileOf(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
