// Package ui provides shared terminal rendering helpers for the status bar.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication, used outside the bar itself
// (doctor output, errors). The bar has its own palette in the monitor
// package.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)
