package monitor

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/gpubar/internal/logger"
)

// MinInterval is the floor for the poll interval. Shorter configured
// intervals are clamped up to this value.
const MinInterval = 250 * time.Millisecond

// firstRefreshDelay is how long after startup the first poll runs, giving the
// terminal a chance to settle and CPU accounting a measurement window.
const firstRefreshDelay = 200 * time.Millisecond

// Phase is the display loop state.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhasePolling
	PhaseIdle
)

// String returns a human-readable phase label.
func (p Phase) String() string {
	switch p {
	case PhasePolling:
		return "polling"
	case PhaseIdle:
		return "idle"
	default:
		return "initializing"
	}
}

// Options configure the status bar.
type Options struct {
	// Interval between polls; values below MinInterval are clamped.
	Interval time.Duration
	// Scale widens bar spacing; values <= 0 reset to 1.0.
	Scale float64
	// XMargin is the right margin in terminal cells.
	XMargin int
}

// Model is the Bubble Tea model for the status bar.
type Model struct {
	collector *Collector
	interval  time.Duration
	scale     float64
	xmargin   int

	state   DisplayState
	prevNet NetSample
	history *History

	width  int
	height int

	phase      Phase
	bordered   bool
	showHelp   bool
	quitting   bool
	lastUpdate time.Time

	log logger.Logger
}

// tickMsg signals that the next poll is due.
type tickMsg time.Time

// snapshotMsg carries one completed poll pass.
type snapshotMsg Snapshot

// NewModel creates the bar model. The collector must already have its GPU
// count detected; the slot layout is fixed to that count for the process
// lifetime. Accounting is primed and the first NET sample taken here so the
// first tick has a rate baseline.
func NewModel(collector *Collector, opts Options, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}

	interval := opts.Interval
	if interval < MinInterval {
		interval = MinInterval
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1.0
	}

	return Model{
		collector: collector,
		interval:  interval,
		scale:     scale,
		xmargin:   opts.XMargin,
		state:     NewDisplayState(collector.GPUCount()),
		prevNet:   collector.Prime(),
		history:   NewHistory(DefaultHistorySize),
		phase:     PhaseInitializing,
		log:       log,
	}
}

// Interval returns the effective (clamped) poll interval.
func (m Model) Interval() time.Duration {
	return m.interval
}

// Phase returns the current display loop phase.
func (m Model) Phase() Phase {
	return m.phase
}

// State returns the current display slots.
func (m Model) State() DisplayState {
	return m.state
}

// Init schedules the first poll.
func (m Model) Init() tea.Cmd {
	return m.tickCmd(firstRefreshDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.phase = PhasePolling
		return m, m.sampleCmd()

	case snapshotMsg:
		m.applySnapshot(Snapshot(msg))
		m.phase = PhaseIdle
		m.lastUpdate = time.Now()
		// The next tick is scheduled only after this snapshot landed, so
		// ticks never overlap (a slow nvidia-smi delays the next poll).
		return m, m.tickCmd(m.interval)
	}

	return m, nil
}

// View renders the bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderBar()
}

// tickCmd returns a command that sends a tick after d.
func (m Model) tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleCmd returns a command that runs one synchronous poll pass.
func (m Model) sampleCmd() tea.Cmd {
	collector := m.collector
	return func() tea.Msg {
		return snapshotMsg(collector.Snapshot(context.Background()))
	}
}

// applySnapshot recomputes every display slot from one poll pass and advances
// the stored previous NET sample regardless of outcome.
func (m *Model) applySnapshot(snap Snapshot) {
	state := NewDisplayState(len(snap.GPUs))

	for i, res := range snap.GPUs {
		if res.Err != nil {
			state.GPUs[i] = GPUSlots{
				Util:  Slot{Text: "err", Severity: SeverityCrit},
				Power: Slot{Text: "n/a", Severity: SeverityWarn},
				Temp:  Slot{Text: "-- °C", Severity: SeverityNeutral},
			}
			continue
		}

		s := res.Sample
		state.GPUs[i] = GPUSlots{
			Util: Slot{
				Text:     fmt.Sprintf("%.0f%%", s.UtilizationPercent),
				Severity: SeverityForUtilization(s.UtilizationPercent),
			},
			Power: Slot{
				Text:     fmt.Sprintf("%.0f W", s.PowerWatts),
				Severity: SeverityNeutral,
			},
			Temp: Slot{
				Text:     fmt.Sprintf("%.0f °C", s.TemperatureCelsius),
				Severity: SeverityForTemperature(s.TemperatureCelsius),
			},
		}
	}

	if snap.CPUErr != nil {
		state.CPU = Slot{Text: "--%", Severity: SeverityNeutral}
	} else {
		state.CPU = Slot{
			Text:     fmt.Sprintf("%.0f%%", snap.CPUPercent),
			Severity: SeverityForCPU(snap.CPUPercent),
		}
	}

	delta := snap.Net.At.Sub(m.prevNet.At).Seconds()
	rate := DownloadRateMBps(m.prevNet.ReceivedBytes, snap.Net.ReceivedBytes, delta)
	m.prevNet = snap.Net
	state.Net = Slot{Text: fmt.Sprintf("%.2f MB/s", rate), Severity: SeverityNeutral}

	cpuForHistory := snap.CPUPercent
	if snap.CPUErr != nil {
		cpuForHistory = 0
	}
	m.history.Push(cpuForHistory, rate)

	m.state = state
}
