package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/harrison/lprojfind/internal/config"
)

// PathPrinter writes a list of result paths in one of the configured formats.
type PathPrinter struct {
	Format string // config.FormatPlain, config.FormatJSON or config.FormatYAML
	Color  bool   // highlight locale folders in plain output
}

// Print writes paths to out. Empty lists print nothing in plain format and
// an empty sequence in json and yaml.
func (p PathPrinter) Print(out io.Writer, paths []string) error {
	if paths == nil {
		paths = []string{}
	}

	switch p.Format {
	case config.FormatPlain, "":
		highlight := color.New(color.FgCyan)
		if p.Color {
			highlight.EnableColor()
		}
		for _, path := range paths {
			line := path
			if p.Color {
				line = highlightLocaleFolders(path, highlight)
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
		return nil

	case config.FormatJSON:
		data, err := json.MarshalIndent(paths, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case config.FormatYAML:
		data, err := yaml.Marshal(paths)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	return fmt.Errorf("unknown output format %q", p.Format)
}

// highlightLocaleFolders colors every "*.lproj" segment of path.
func highlightLocaleFolders(path string, c *color.Color) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasSuffix(strings.ToLower(segment), ".lproj") {
			segments[i] = c.Sprint(segment)
		}
	}
	return strings.Join(segments, "/")
}

// ColorEnabled resolves a color mode for output written to f.
// "auto" enables color only for terminals and honors NO_COLOR.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
