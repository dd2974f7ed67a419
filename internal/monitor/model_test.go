package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/gpubar/internal/errors"
)

// newTestModel builds a model over a stub-accounting collector with the given
// fixed GPU count, without touching nvidia-smi.
func newTestModel(t *testing.T, gpuCount int, opts Options) Model {
	t.Helper()
	c := NewCollector("nvidia-smi", IfaceAuto, &stubAccounting{}, nil)
	c.gpuCount = gpuCount
	return NewModel(c, opts, nil)
}

func TestNewModel_ClampsInterval(t *testing.T) {
	m := newTestModel(t, 1, Options{Interval: 100 * time.Millisecond})
	assert.Equal(t, 250*time.Millisecond, m.Interval())
}

func TestNewModel_KeepsValidInterval(t *testing.T) {
	m := newTestModel(t, 1, Options{Interval: 2 * time.Second})
	assert.Equal(t, 2*time.Second, m.Interval())
}

func TestNewModel_ResetsNonPositiveScale(t *testing.T) {
	m := newTestModel(t, 1, Options{Interval: time.Second, Scale: -2})
	assert.Equal(t, 1.0, m.scale)

	m = newTestModel(t, 1, Options{Interval: time.Second, Scale: 0})
	assert.Equal(t, 1.0, m.scale)

	m = newTestModel(t, 1, Options{Interval: time.Second, Scale: 1.5})
	assert.Equal(t, 1.5, m.scale)
}

func TestNewModel_InitializesSlotsPerGPU(t *testing.T) {
	m := newTestModel(t, 2, Options{Interval: time.Second})

	state := m.State()
	require.Len(t, state.GPUs, 2)
	for _, g := range state.GPUs {
		assert.Equal(t, "--%", g.Util.Text)
		assert.Equal(t, "-- W", g.Power.Text)
		assert.Equal(t, "-- °C", g.Temp.Text)
	}
	assert.Equal(t, "--%", state.CPU.Text)
	assert.Equal(t, "-- MB/s", state.Net.Text)
}

func TestUpdate_PhaseTransitions(t *testing.T) {
	m := newTestModel(t, 0, Options{Interval: time.Second})
	assert.Equal(t, PhaseInitializing, m.Phase())

	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	assert.Equal(t, PhasePolling, m.Phase())
	assert.NotNil(t, cmd, "tick should trigger a sample command")

	updated, cmd = m.Update(snapshotMsg(Snapshot{At: time.Now(), Net: NetSample{At: time.Now()}}))
	m = updated.(Model)
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.NotNil(t, cmd, "snapshot should schedule the next tick")
}

func TestApplySnapshot_PerGPUFailureIsolated(t *testing.T) {
	m := newTestModel(t, 2, Options{Interval: time.Second})

	now := time.Now()
	snap := Snapshot{
		At: now,
		GPUs: []GPUResult{
			{Sample: GPUSample{Index: 0, UtilizationPercent: 45, PowerWatts: 220, TemperatureCelsius: 65}},
			{Err: errors.NewQueryFailed(1, assert.AnError)},
		},
		CPUPercent: 12,
		Net:        NetSample{At: now, ReceivedBytes: 0},
	}
	m.applySnapshot(snap)

	state := m.State()

	// GPU 0 updated normally.
	assert.Equal(t, "45%", state.GPUs[0].Util.Text)
	assert.Equal(t, SeverityWarn, state.GPUs[0].Util.Severity)
	assert.Equal(t, "220 W", state.GPUs[0].Power.Text)
	assert.Equal(t, "65 °C", state.GPUs[0].Temp.Text)

	// GPU 1 degraded, loop not aborted.
	assert.Equal(t, "err", state.GPUs[1].Util.Text)
	assert.Equal(t, SeverityCrit, state.GPUs[1].Util.Severity)
	assert.Equal(t, "n/a", state.GPUs[1].Power.Text)
	assert.Equal(t, "-- °C", state.GPUs[1].Temp.Text)

	// CPU slot unaffected.
	assert.Equal(t, "12%", state.CPU.Text)
	assert.Equal(t, SeverityGood, state.CPU.Severity)
}

func TestApplySnapshot_CPUErrorShowsDash(t *testing.T) {
	m := newTestModel(t, 0, Options{Interval: time.Second})

	snap := Snapshot{
		At:     time.Now(),
		CPUErr: assert.AnError,
		Net:    NetSample{At: time.Now()},
	}
	m.applySnapshot(snap)

	assert.Equal(t, "--%", m.State().CPU.Text)
	assert.Equal(t, SeverityNeutral, m.State().CPU.Severity)
}

func TestApplySnapshot_ComputesNetRateAndAdvancesSample(t *testing.T) {
	m := newTestModel(t, 0, Options{Interval: time.Second})

	base := time.Now()
	m.prevNet = NetSample{At: base, ReceivedBytes: 0}

	snap := Snapshot{
		At:  base.Add(time.Second),
		Net: NetSample{At: base.Add(time.Second), ReceivedBytes: 104857600},
	}
	m.applySnapshot(snap)

	assert.Equal(t, "100.00 MB/s", m.State().Net.Text)
	assert.Equal(t, snap.Net, m.prevNet, "previous sample must advance")

	// Counter reset on the next tick clamps to zero but still advances.
	snap2 := Snapshot{
		At:  base.Add(2 * time.Second),
		Net: NetSample{At: base.Add(2 * time.Second), ReceivedBytes: 512},
	}
	m.applySnapshot(snap2)

	assert.Equal(t, "0.00 MB/s", m.State().Net.Text)
	assert.Equal(t, snap2.Net, m.prevNet)
}

func TestHandleKeyMsg(t *testing.T) {
	m := newTestModel(t, 1, Options{Interval: time.Second})

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.True(t, m.bordered)

	handled, cmd = m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, handled)
	assert.NotNil(t, cmd, "quit should return tea.Quit")
	assert.True(t, m.quitting)

	handled, _ = m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.False(t, handled)
}

func TestView_EmptyWhileQuitting(t *testing.T) {
	m := newTestModel(t, 1, Options{Interval: time.Second})
	m.quitting = true
	assert.Equal(t, "", m.View())
}
