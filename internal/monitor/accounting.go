package monitor

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/cpu"
	gonet "github.com/shirou/gopsutil/net"

	"github.com/rileyhilliard/gpubar/internal/logger"
	"github.com/rileyhilliard/gpubar/internal/monitor/parsers"
)

// IfaceAuto selects the busiest non-loopback interface by combined traffic.
const IfaceAuto = "auto"

// SystemAccounting provides CPU utilization and network byte counters.
// The implementation is capability-checked once at startup; when no facility
// is available a stub returning zeros is used (degraded mode, not an error).
type SystemAccounting interface {
	// Name identifies the backing facility ("gopsutil", "procfs", "stub").
	Name() string

	// Prime warms up CPU accounting so the first real reading has a baseline.
	Prime()

	// CPUPercent returns an instantaneous system CPU utilization percentage.
	CPUPercent() (float64, error)

	// NetReceivedBytes returns the cumulative received-byte counter for the
	// named interface. With IfaceAuto it selects the non-loopback interface
	// with the highest combined sent+received volume but still returns the
	// received counter only. Returns 0 when no counters are available.
	NetReceivedBytes(iface string) uint64
}

// DetectAccounting probes available accounting facilities and returns the
// best one: gopsutil, then the textual procfs fallback, then a stub.
func DetectAccounting(log logger.Logger) SystemAccounting {
	if log == nil {
		log = logger.Noop()
	}

	if _, err := cpu.Percent(0, false); err == nil {
		log.Debug("accounting: using gopsutil")
		return &psAccounting{}
	}

	if _, err := os.ReadFile(procStatPath); err == nil {
		log.Debug("accounting: using procfs fallback")
		return &procAccounting{}
	}

	log.Warn("accounting: no CPU/NET facility available, metrics degraded to zero")
	return &stubAccounting{}
}

// selectReceivedBytes applies the interface selection rules to a counter set.
// A recognized explicit name wins; otherwise the busiest non-loopback
// interface by rx+tx volume is chosen and its rx counter returned.
func selectReceivedBytes(counters []parsers.InterfaceCounters, iface string) uint64 {
	if iface != "" && iface != IfaceAuto {
		for _, c := range counters {
			if c.Name == iface {
				return c.RxBytes
			}
		}
	}

	var best *parsers.InterfaceCounters
	var bestVolume uint64
	for i := range counters {
		c := &counters[i]
		if strings.HasPrefix(c.Name, "lo") {
			continue
		}
		volume := c.RxBytes + c.TxBytes
		if best == nil || volume > bestVolume {
			best = c
			bestVolume = volume
		}
	}
	if best == nil {
		return 0
	}
	return best.RxBytes
}

// psAccounting backs SystemAccounting with gopsutil.
type psAccounting struct{}

func (a *psAccounting) Name() string { return "gopsutil" }

// Prime takes a throwaway reading so subsequent calls measure a real window.
func (a *psAccounting) Prime() {
	_, _ = cpu.Percent(0, false)
}

func (a *psAccounting) CPUPercent() (float64, error) {
	pcts, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, fmt.Errorf("no cpu readings returned")
	}
	return pcts[0], nil
}

func (a *psAccounting) NetReceivedBytes(iface string) uint64 {
	stats, err := gonet.IOCounters(true)
	if err != nil {
		return 0
	}

	counters := make([]parsers.InterfaceCounters, 0, len(stats))
	for _, s := range stats {
		counters = append(counters, parsers.InterfaceCounters{
			Name:    s.Name,
			RxBytes: s.BytesRecv,
			TxBytes: s.BytesSent,
		})
	}
	return selectReceivedBytes(counters, iface)
}

// Kernel files read by the procfs fallback.
const (
	procStatPath   = "/proc/stat"
	procNetDevPath = "/proc/net/dev"
)

// procAccounting is the textual kernel-interface fallback used when gopsutil
// is unavailable. CPU percent comes from /proc/stat jiffy deltas between
// consecutive readings.
type procAccounting struct {
	mu        sync.Mutex
	prevTotal int64
	prevIdle  int64
	primed    bool
}

func (a *procAccounting) Name() string { return "procfs" }

func (a *procAccounting) Prime() {
	_, _ = a.CPUPercent()
}

func (a *procAccounting) CPUPercent() (float64, error) {
	data, err := os.ReadFile(procStatPath)
	if err != nil {
		return 0, err
	}

	total, idle, err := parsers.ParseCPUStat(string(data))
	if err != nil {
		return 0, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.primed {
		a.prevTotal, a.prevIdle = total, idle
		a.primed = true
		return 0, nil
	}

	deltaTotal := total - a.prevTotal
	deltaIdle := idle - a.prevIdle
	a.prevTotal, a.prevIdle = total, idle

	if deltaTotal <= 0 {
		return 0, nil
	}
	return float64(deltaTotal-deltaIdle) / float64(deltaTotal) * 100, nil
}

func (a *procAccounting) NetReceivedBytes(iface string) uint64 {
	data, err := os.ReadFile(procNetDevPath)
	if err != nil {
		return 0
	}

	counters, err := parsers.ParseNetDev(string(data))
	if err != nil {
		return 0
	}
	return selectReceivedBytes(counters, iface)
}

// stubAccounting reports zeros when no accounting facility exists.
type stubAccounting struct{}

func (a *stubAccounting) Name() string                         { return "stub" }
func (a *stubAccounting) Prime()                               {}
func (a *stubAccounting) CPUPercent() (float64, error)         { return 0, nil }
func (a *stubAccounting) NetReceivedBytes(iface string) uint64 { return 0 }
