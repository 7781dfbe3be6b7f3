package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tubeget/tubeget/internal/provider"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))   // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // red
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))  // cyan
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")) // light grey
)

func printSuccess(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

func printError(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

func printInfo(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// printProgress rewrites a single terminal line with the latest snapshot.
func printProgress(p provider.Progress) {
	line := fmt.Sprintf("%3d%%", p.Percent)
	if p.Speed != "" {
		line += "  " + p.Speed
	}
	if p.ETASec >= 0 {
		line += fmt.Sprintf("  ETA %ds", p.ETASec)
	}
	fmt.Printf("\r%s", detailStyle.Render(line))
}

// finishProgressLine terminates the in-place progress line before printing
// the outcome.
func finishProgressLine() {
	if !quiet {
		fmt.Print("\r\033[K")
	}
}
