package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	bannerColor    = color.New(color.FgCyan)
	highlightColor = color.New(color.FgGreen)
	alertColor     = color.New(color.FgRed)
	headerColor    = color.New(color.FgYellow)
)

// printBanner writes the welcome banner shown at the start of a scan.
func printBanner(w io.Writer) {
	banner := "╔═════════════════════════════════════════════╗\n" +
		"║         Welcome to Clutter Cutter           ║\n" +
		"╚═════════════════════════════════════════════╝"
	fmt.Fprintln(w, bannerColor.Sprint(banner))
}

// highlight formats a value with the emphasis color used for counts and paths.
func highlight(format string, args ...any) string {
	return highlightColor.Sprintf(format, args...)
}
