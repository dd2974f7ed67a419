package monitor

import (
	"context"
	"os/exec"
	"strconv"
	"time"

	"github.com/rileyhilliard/gpubar/internal/errors"
	"github.com/rileyhilliard/gpubar/internal/logger"
	"github.com/rileyhilliard/gpubar/internal/monitor/parsers"
)

const (
	// SMIBinary is the external diagnostic tool queried for GPU telemetry.
	SMIBinary = "nvidia-smi"

	// DefaultQueryTimeout bounds each nvidia-smi invocation so a hung driver
	// degrades one slot instead of freezing the bar indefinitely.
	DefaultQueryTimeout = 5 * time.Second
)

// LookupSMI returns the path to nvidia-smi, or an error when it is absent
// from PATH. Absence at startup is fatal for the whole program.
func LookupSMI() (string, error) {
	path, err := exec.LookPath(SMIBinary)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrExec,
			"nvidia-smi not found in PATH",
			"Install the NVIDIA drivers & CUDA toolkit, or add nvidia-smi to your PATH.")
	}
	return path, nil
}

// Collector gathers one Snapshot per tick from nvidia-smi and the selected
// system accounting facility. All calls are synchronous; a tick runs to
// completion before the next one is scheduled.
type Collector struct {
	smiPath  string
	iface    string
	timeout  time.Duration
	acct     SystemAccounting
	gpuCount int
	log      logger.Logger
}

// NewCollector creates a collector for the given nvidia-smi path and network
// interface selector ("auto" or an explicit interface name). A nil accounting
// triggers capability detection; a nil logger disables logging.
func NewCollector(smiPath, iface string, acct SystemAccounting, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	if acct == nil {
		acct = DetectAccounting(log)
	}
	return &Collector{
		smiPath: smiPath,
		iface:   iface,
		timeout: DefaultQueryTimeout,
		acct:    acct,
		log:     log,
	}
}

// SetTimeout overrides the per-query subprocess timeout.
func (c *Collector) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Accounting returns the selected accounting facility.
func (c *Collector) Accounting() SystemAccounting {
	return c.acct
}

// GPUCount returns the GPU count detected at startup.
func (c *Collector) GPUCount() int {
	return c.gpuCount
}

// DetectGPUCount invokes the list command once at startup and fixes the GPU
// count for the process lifetime. The count is the number of listing lines.
func (c *Collector) DetectGPUCount(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, c.smiPath, "--list-gpus").Output()
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't list GPUs",
			"Run 'nvidia-smi --list-gpus' by hand to see what the driver reports.")
	}

	c.gpuCount = parsers.CountGPUs(string(out))
	c.log.Debug("detected %d GPU(s)", c.gpuCount)
	return c.gpuCount, nil
}

// QueryGPU polls a single GPU. Failures return a QUERY-coded error and are
// isolated to that GPU's display slots.
func (c *Collector) QueryGPU(ctx context.Context, index int) (GPUSample, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.smiPath,
		"--query-gpu=utilization.gpu,power.draw,temperature.gpu",
		"--format=csv,noheader,nounits",
		"-i", strconv.Itoa(index),
	)

	// Driver error text lands on stderr, capture it alongside stdout.
	out, err := cmd.CombinedOutput()
	if err != nil {
		return GPUSample{}, errors.NewQueryFailed(index, err)
	}

	q, err := parsers.ParseGPUQuery(string(out))
	if err != nil {
		return GPUSample{}, errors.NewQueryFailed(index, err)
	}

	return GPUSample{
		Index:              index,
		UtilizationPercent: q.UtilizationPercent,
		PowerWatts:         q.PowerWatts,
		TemperatureCelsius: q.TemperatureCelsius,
	}, nil
}

// Prime warms up CPU accounting and takes the first NET sample so the first
// tick has a baseline to compute a rate against.
func (c *Collector) Prime() NetSample {
	c.acct.Prime()
	return NetSample{At: time.Now(), ReceivedBytes: c.acct.NetReceivedBytes(c.iface)}
}

// Snapshot performs one full poll pass: every GPU in index order, CPU
// percent, and a fresh NET sample. Per-GPU failures land in the corresponding
// GPUResult without affecting the rest of the pass.
func (c *Collector) Snapshot(ctx context.Context) Snapshot {
	snap := Snapshot{At: time.Now(), GPUs: make([]GPUResult, c.gpuCount)}

	for i := 0; i < c.gpuCount; i++ {
		sample, err := c.QueryGPU(ctx, i)
		if err != nil {
			c.log.Debug("gpu %d query failed: %v", i, err)
			snap.GPUs[i] = GPUResult{Err: err}
			continue
		}
		snap.GPUs[i] = GPUResult{Sample: sample}
	}

	pct, err := c.acct.CPUPercent()
	snap.CPUPercent = pct
	snap.CPUErr = err

	snap.Net = NetSample{At: time.Now(), ReceivedBytes: c.acct.NetReceivedBytes(c.iface)}
	return snap
}
