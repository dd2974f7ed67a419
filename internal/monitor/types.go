package monitor

import "time"

// GPUSample holds one poll's worth of telemetry for a single GPU.
// Produced fresh each tick and discarded after render.
type GPUSample struct {
	Index              int
	UtilizationPercent float64
	PowerWatts         float64
	TemperatureCelsius float64
}

// NetSample pairs a cumulative received-byte counter with the time it was read.
// Exactly one previous sample is retained between ticks for the rate
// computation; it is overwritten after every tick regardless of outcome.
type NetSample struct {
	At            time.Time
	ReceivedBytes uint64
}

// GPUResult is the outcome of querying a single GPU: a sample or an error.
// Errors are isolated per GPU and never abort the tick.
type GPUResult struct {
	Sample GPUSample
	Err    error
}

// Snapshot is everything one tick collects.
type Snapshot struct {
	At         time.Time
	GPUs       []GPUResult
	CPUPercent float64
	CPUErr     error
	Net        NetSample
}

// Slot is one rendered metric cell: text plus its severity color band.
type Slot struct {
	Text     string
	Severity Severity
}

// GPUSlots groups the three display slots for one GPU.
type GPUSlots struct {
	Util  Slot
	Power Slot
	Temp  Slot
}

// DisplayState maps every metric slot to its current text and color.
// It is recomputed wholesale each tick; on query failure a slot shows a
// degraded placeholder until the next successful tick. The GPU slice length
// is fixed at the count detected at startup (no hot-plug handling).
type DisplayState struct {
	GPUs []GPUSlots
	CPU  Slot
	Net  Slot
}

// NewDisplayState returns a DisplayState with placeholder slots for count GPUs.
func NewDisplayState(count int) DisplayState {
	state := DisplayState{
		GPUs: make([]GPUSlots, count),
		CPU:  Slot{Text: "--%", Severity: SeverityNeutral},
		Net:  Slot{Text: "-- MB/s", Severity: SeverityNeutral},
	}
	for i := range state.GPUs {
		state.GPUs[i] = GPUSlots{
			Util:  Slot{Text: "--%", Severity: SeverityNeutral},
			Power: Slot{Text: "-- W", Severity: SeverityNeutral},
			Temp:  Slot{Text: "-- °C", Severity: SeverityNeutral},
		}
	}
	return state
}
