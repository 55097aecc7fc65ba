package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// RuleWidth is the width of horizontal separators.
const RuleWidth = 50

// IsTerminal reports whether w is an interactive console.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ClearScreen clears the console with ANSI home + erase. It is a no-op
// when w is not a terminal so piped output stays readable.
func ClearScreen(w io.Writer) {
	if !IsTerminal(w) {
		return
	}
	fmt.Fprint(w, "\033[H\033[2J")
}

// Rule returns a dimmed horizontal separator.
func Rule() string {
	return DimStyle.Render(strings.Repeat("=", RuleWidth))
}

// PrintHeader writes the application banner.
func PrintHeader(w io.Writer) {
	banner := TitleStyle.Render(strings.Join([]string{
		strings.Repeat("=", RuleWidth),
		"                     PC CARE",
		"        (Computer Assistance & Repair Engine)",
		strings.Repeat("=", RuleWidth),
	}, "\n"))
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
	fmt.Fprintln(w, InfoStyle.Render("A modern, open-source utility for gamers and power users"))
	fmt.Fprintln(w, InfoStyle.Render("to clean, repair, and optimize their Windows PC."))
	fmt.Fprintln(w)
	fmt.Fprintln(w, Rule())
}

// SectionTitle formats "--- name ---".
func SectionTitle(name string) string {
	return TitleStyle.Render("--- " + name + " ---")
}
