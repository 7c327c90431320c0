// Package display formats lprojfind output for the terminal.
//
// Result paths go to stdout through PathPrinter, one per line in plain
// format or as a single JSON array or YAML sequence:
//
//	printer := display.PathPrinter{Format: cfg.Format, Color: display.ColorEnabled(cfg.Color, os.Stdout)}
//	if err := printer.Print(os.Stdout, paths); err != nil {
//	    return err
//	}
//
// In colored plain output every "*.lproj" segment is highlighted in cyan.
//
// Warnings go to stderr and never change a command's exit status:
//
//	display.WarnUnreadableRoot(root, err).Display(os.Stderr)
package display
