package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/HelmerNylen/mkbsc/internal/fixpoint"
)

var (
	accentColor = lipgloss.Color("#10B981")
	warnColor   = lipgloss.Color("#F59E0B")
	errColor    = lipgloss.Color("#EF4444")
	mutedColor  = lipgloss.Color("#94A3B8")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errColor).Bold(true)
	rowStyle    = lipgloss.NewStyle().Foreground(mutedColor)

	statusStyles = map[fixpoint.Status]lipgloss.Style{
		fixpoint.NotStable:              lipgloss.NewStyle().Foreground(errColor).Bold(true),
		fixpoint.StableStructureOnly:    lipgloss.NewStyle().Foreground(warnColor).Bold(true),
		fixpoint.StableWithObservations: lipgloss.NewStyle().Foreground(accentColor).Bold(true),
	}
)

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func printSizeLog(sizes []int, status fixpoint.Status) {
	width := terminalWidth()
	fmt.Println(headerStyle.Render(strings.Repeat("-", min(width, 40))))
	fmt.Println(headerStyle.Render("MKBSC fixpoint iteration log"))
	for i, size := range sizes {
		fmt.Println(rowStyle.Render(fmt.Sprintf("  iteration %2d: %4d states", i, size)))
	}
	style, ok := statusStyles[status]
	if !ok {
		style = rowStyle
	}
	fmt.Println(style.Render("status: " + status.String()))
}
