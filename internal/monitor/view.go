package monitor

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/gpubar/internal/ui"
)

// LayoutMode is the responsive layout picked from the terminal width.
type LayoutMode int

const (
	// LayoutCompact keeps only the utilization slot per GPU.
	LayoutCompact LayoutMode = iota
	// LayoutFull shows all three slots per GPU.
	LayoutFull
	// LayoutWide adds CPU and NET history sparklines after their slots.
	LayoutWide
)

// sparklineWidth is the cell count of each sparkline on wide terminals.
const sparklineWidth = 10

// LayoutMode returns the widest layout that fits the current terminal,
// dropping power and temperature slots before touching utilization.
func (m Model) LayoutMode() LayoutMode {
	if m.width <= 0 {
		return LayoutFull
	}

	avail := m.width - m.xmargin
	if m.bordered {
		avail -= 2
	}

	if lipgloss.Width(m.renderLine(LayoutWide)) <= avail {
		return LayoutWide
	}
	if lipgloss.Width(m.renderLine(LayoutFull)) <= avail {
		return LayoutFull
	}
	return LayoutCompact
}

// renderBar renders the full bar: the metric line (optionally bordered)
// pushed against the right edge, plus the help footer when toggled.
func (m Model) renderBar() string {
	line := m.renderLine(m.LayoutMode())

	bar := BarStyle.Render(line)
	if m.bordered {
		bar = BorderedBarStyle.Render(line)
	}

	bar = m.alignRight(bar)

	if m.showHelp {
		bar += "\n" + m.alignRight(m.renderHelp())
	}
	return bar
}

// renderLine builds the single metric line for the given layout.
func (m Model) renderLine(mode LayoutMode) string {
	sep := m.separator()

	var b strings.Builder
	for i, g := range m.state.GPUs {
		b.WriteString(TagStyle.Render(fmt.Sprintf("GPU%d ", i)))
		b.WriteString(g.Util.Severity.Style().Render(g.Util.Text))
		b.WriteString(sep)
		if mode != LayoutCompact {
			b.WriteString(g.Power.Severity.Style().Render(g.Power.Text))
			b.WriteString(sep)
			b.WriteString(g.Temp.Severity.Style().Render(g.Temp.Text))
			b.WriteString(sep)
		}
	}

	b.WriteString(TagStyle.Render("CPU "))
	b.WriteString(m.state.CPU.Severity.Style().Render(m.state.CPU.Text))
	if mode == LayoutWide {
		if data := m.history.CPUHistory(sparklineWidth); len(data) > 1 {
			b.WriteString(" ")
			b.WriteString(ui.RenderSparkline(data, sparklineWidth, ui.ColorSecondary))
		}
	}
	b.WriteString(sep)
	b.WriteString(TagStyle.Render("NET↓ "))
	b.WriteString(m.state.Net.Severity.Style().Render(m.state.Net.Text))

	if mode == LayoutWide {
		if data := m.history.NetHistory(sparklineWidth); len(data) > 1 {
			b.WriteString(" ")
			b.WriteString(ui.RenderSparkline(data, sparklineWidth, ui.ColorInfo))
		}
	}

	return b.String()
}

// separator renders the slot divider, widened by the scale factor.
func (m Model) separator() string {
	pad := strings.Repeat(" ", int(math.Round(m.scale)))
	return SepStyle.Render(pad + "|" + pad)
}

// renderHelp renders the one-line key reference footer.
func (m Model) renderHelp() string {
	return HelpStyle.Render("q quit · b toggle border · ? help")
}

// alignRight pads every line of s so it ends xmargin cells from the right
// edge. With an unknown terminal width the content is returned unchanged.
func (m Model) alignRight(s string) string {
	if m.width <= 0 {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		pad := m.width - m.xmargin - lipgloss.Width(line)
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
