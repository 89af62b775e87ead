// Package tui renders terminal output for the scenic CLI.
package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var profile = termenv.ColorProfile()

// colorize gates styling on stdout being an interactive terminal, so piped
// output stays plain.
func colorize() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Success prints msg as a success line.
func Success(msg string) {
	if !colorize() {
		fmt.Println(msg)
		return
	}
	fmt.Println(termenv.String(msg).Foreground(profile.Color("#34d399")).Bold())
}

// Failure prints msg as a failure line.
func Failure(msg string) {
	if !colorize() {
		fmt.Println(msg)
		return
	}
	fmt.Println(termenv.String(msg).Foreground(profile.Color("#f87171")).Bold())
}

// PrintBanner outputs the ASCII art banner for Scenic.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String("  ___  ___ ___ _ __ (_) ___ ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" / __|/ __/ _ \\ '_ \\| |/ __|").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" \\__ \\ (_|  __/ | | | | (__ ").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" |___/\\___\\___|_| |_|_|\\___|").Foreground(p.Color("#e879f9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println()
}
