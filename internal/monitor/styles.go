package monitor

import "github.com/charmbracelet/lipgloss"

// Bar color palette
const (
	ColorBarBg   = lipgloss.Color("#111827") // Slate background
	ColorGood    = lipgloss.Color("#22c55e") // Green
	ColorWarn    = lipgloss.Color("#f59e0b") // Amber
	ColorCrit    = lipgloss.Color("#ef4444") // Red
	ColorText    = lipgloss.Color("#e5e7eb") // Primary text
	ColorNeutral = lipgloss.Color("#9ca3af") // Neutral values
	ColorSep     = lipgloss.Color("#6b7280") // Separators
	ColorBorder  = lipgloss.Color("#374151") // Optional border
)

// Severity is the color band a metric value falls into.
type Severity int

const (
	SeverityNeutral Severity = iota
	SeverityGood
	SeverityWarn
	SeverityCrit
)

// String returns a human-readable severity label.
func (s Severity) String() string {
	switch s {
	case SeverityGood:
		return "good"
	case SeverityWarn:
		return "warn"
	case SeverityCrit:
		return "crit"
	default:
		return "neutral"
	}
}

// Threshold breaks for the severity step functions. The CPU critical break
// is 75, not 70; the two are intentionally distinct.
const (
	UtilizationWarnThreshold = 40.0
	UtilizationCritThreshold = 70.0
	CPUWarnThreshold         = 40.0
	CPUCritThreshold         = 75.0
	TemperatureWarnThreshold = 70.0
	TemperatureCritThreshold = 85.0
)

// SeverityForUtilization classifies a GPU utilization percentage.
// Out-of-range values classify through the same breaks.
func SeverityForUtilization(pct float64) Severity {
	switch {
	case pct < UtilizationWarnThreshold:
		return SeverityGood
	case pct < UtilizationCritThreshold:
		return SeverityWarn
	default:
		return SeverityCrit
	}
}

// SeverityForCPU classifies a CPU utilization percentage.
func SeverityForCPU(pct float64) Severity {
	switch {
	case pct < CPUWarnThreshold:
		return SeverityGood
	case pct < CPUCritThreshold:
		return SeverityWarn
	default:
		return SeverityCrit
	}
}

// SeverityForTemperature classifies a temperature in Celsius.
func SeverityForTemperature(celsius float64) Severity {
	switch {
	case celsius < TemperatureWarnThreshold:
		return SeverityGood
	case celsius < TemperatureCritThreshold:
		return SeverityWarn
	default:
		return SeverityCrit
	}
}

// Base styles for the bar
var (
	TagStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBarBg).
			Bold(true)

	SepStyle = lipgloss.NewStyle().
			Foreground(ColorSep).
			Background(ColorBarBg)

	BarStyle = lipgloss.NewStyle().
			Background(ColorBarBg)

	BorderedBarStyle = lipgloss.NewStyle().
				Background(ColorBarBg).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorSep)

	severityStyles = map[Severity]lipgloss.Style{
		SeverityNeutral: lipgloss.NewStyle().Foreground(ColorNeutral).Background(ColorBarBg),
		SeverityGood:    lipgloss.NewStyle().Foreground(ColorGood).Background(ColorBarBg),
		SeverityWarn:    lipgloss.NewStyle().Foreground(ColorWarn).Background(ColorBarBg),
		SeverityCrit:    lipgloss.NewStyle().Foreground(ColorCrit).Background(ColorBarBg),
	}
)

// Style returns the lipgloss style for the severity.
func (s Severity) Style() lipgloss.Style {
	if style, ok := severityStyles[s]; ok {
		return style
	}
	return severityStyles[SeverityNeutral]
}
