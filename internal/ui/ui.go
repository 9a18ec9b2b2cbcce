// Package ui provides colored status lines for the doctor command.
package ui

import "fmt"

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

// Header prints a bold section heading.
func Header(msg string) {
	fmt.Printf("\n%s%s%s\n", colorBold, msg, colorReset)
}

// Success prints a green check line for label.
func Success(label, detail string) {
	status("✔", colorGreen, label, detail)
}

// Failure prints a red cross line for label.
func Failure(label, detail string) {
	status("✘", colorRed, label, detail)
}

// Warning prints a yellow notice line for label.
func Warning(label, detail string) {
	status("!", colorYellow, label, detail)
}

func status(mark, color, label, detail string) {
	fmt.Printf("  %s%s%s %-10s %s%s%s\n", color, mark, colorReset, label, color, detail, colorReset)
}
