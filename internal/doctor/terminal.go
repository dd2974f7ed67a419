package doctor

import (
	"fmt"

	"github.com/muesli/termenv"
)

// TerminalCheck reports the terminal's color capabilities. The bar renders
// with a 24-bit palette; limited terminals degrade the colors.
type TerminalCheck struct{}

// Name returns the check identifier.
func (c *TerminalCheck) Name() string {
	return "terminal_colors"
}

// Category returns the check category.
func (c *TerminalCheck) Category() string {
	return "TERMINAL"
}

// Run executes the terminal color capability check.
func (c *TerminalCheck) Run() CheckResult {
	profile := termenv.ColorProfile()

	switch profile {
	case termenv.TrueColor:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "terminal supports 24-bit color",
		}
	case termenv.ANSI256, termenv.ANSI:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("terminal color profile is %s", profileName(profile)),
			Suggestion: "Severity colors will be approximated. Try setting COLORTERM=truecolor.",
		}
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "terminal reports no color support",
			Suggestion: "The bar will render without severity colors.",
		}
	}
}

// profileName converts a termenv profile to a readable label.
func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256-color"
	case termenv.ANSI:
		return "16-color"
	default:
		return "monochrome"
	}
}

// DefaultChecks returns the standard diagnostic check set.
func DefaultChecks() []Check {
	return []Check{
		&SMICheck{},
		&AccountingCheck{},
		&TerminalCheck{},
	}
}
