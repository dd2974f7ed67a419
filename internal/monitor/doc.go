// Package monitor implements the always-visible GPU/CPU/NET status bar.
//
// The bar periodically polls nvidia-smi for per-GPU telemetry, system
// accounting for CPU usage and network counters, and renders everything as a
// single color-coded line pinned to the right edge of the terminal.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the bar state (display slots, previous net sample, layout)
//   - Update: Processes messages (keystrokes, tick events, fresh snapshots)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Model            - The Bubble Tea model containing all bar state
//	Collector        - Runs nvidia-smi and reads system accounting each tick
//	SystemAccounting - Capability-checked CPU/NET counter source
//	History          - Ring buffer storage for sparkline rendering
//
// # Message Flow
//
// The bar operates on a strictly sequential tick cycle:
//
//  1. tickMsg fires after the configured interval (min 250ms)
//  2. sampleCmd() synchronously collects a Snapshot
//  3. snapshotMsg arrives, display slots are recomputed wholesale
//  4. the next tick is scheduled only after the snapshot is applied
//
// Scheduling the next tick from the snapshot handler means ticks never
// overlap: a slow nvidia-smi call delays the next poll instead of stacking
// concurrent ones.
//
// # Failure Isolation
//
// Each GPU query is independent. A malformed or failed query degrades only
// that GPU's three slots ("err" / "n/a" / "-- °C"); other GPUs, the CPU slot,
// and the NET slot still update in the same tick. Nothing in steady-state
// polling is fatal; a failed slot self-heals on the next tick if the
// underlying condition clears.
package monitor
