package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorGreen   = lipgloss.Color("#00E676")
	colorYellow  = lipgloss.Color("#FFD700")
	colorMagenta = lipgloss.Color("#D16BFF")
)

// Output formatting helpers. Reports go to stdout; these are status lines.
// Styles are bound to the writer, so colour only reaches terminals.

// statusStyle returns a foreground style rendered for w.
func statusStyle(w io.Writer, color lipgloss.Color) lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	if globalNoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r.NewStyle().Foreground(color)
}

// printSuccess prints a success message
func printSuccess(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(w, "%s %s\n", statusStyle(w, colorGreen).Render("✓"), msg)
}

// printWarning prints a warning message
func printWarning(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(w, "%s %s\n", statusStyle(w, colorYellow).Render("⚠"), msg)
}

// printHeader prints a section header
func printHeader(w io.Writer, title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(w, statusStyle(w, colorMagenta).Bold(true).Render("=== "+title+" ==="))
}
