package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/gpubar/internal/monitor/parsers"
)

func TestSelectReceivedBytes_ExplicitInterface(t *testing.T) {
	counters := []parsers.InterfaceCounters{
		{Name: "eth0", RxBytes: 100, TxBytes: 200},
		{Name: "wlan0", RxBytes: 5000, TxBytes: 5000},
	}

	assert.Equal(t, uint64(100), selectReceivedBytes(counters, "eth0"))
}

func TestSelectReceivedBytes_UnknownNameFallsBackToAuto(t *testing.T) {
	counters := []parsers.InterfaceCounters{
		{Name: "eth0", RxBytes: 100, TxBytes: 200},
		{Name: "wlan0", RxBytes: 5000, TxBytes: 5000},
	}

	assert.Equal(t, uint64(5000), selectReceivedBytes(counters, "enp0s99"))
}

func TestSelectReceivedBytes_AutoPicksBusiestByCombinedVolume(t *testing.T) {
	// wlan0 has less received traffic but more combined volume; auto ranks
	// by rx+tx yet still returns the received counter only.
	counters := []parsers.InterfaceCounters{
		{Name: "eth0", RxBytes: 4000, TxBytes: 0},
		{Name: "wlan0", RxBytes: 1000, TxBytes: 9000},
	}

	assert.Equal(t, uint64(1000), selectReceivedBytes(counters, IfaceAuto))
}

func TestSelectReceivedBytes_AutoExcludesLoopback(t *testing.T) {
	counters := []parsers.InterfaceCounters{
		{Name: "lo", RxBytes: 999999, TxBytes: 999999},
		{Name: "eth0", RxBytes: 42, TxBytes: 1},
	}

	assert.Equal(t, uint64(42), selectReceivedBytes(counters, IfaceAuto))
}

func TestSelectReceivedBytes_NoCandidates(t *testing.T) {
	assert.Equal(t, uint64(0), selectReceivedBytes(nil, IfaceAuto))

	onlyLoopback := []parsers.InterfaceCounters{{Name: "lo", RxBytes: 100, TxBytes: 100}}
	assert.Equal(t, uint64(0), selectReceivedBytes(onlyLoopback, IfaceAuto))
}

func TestStubAccounting_Zeros(t *testing.T) {
	var a stubAccounting

	pct, err := a.CPUPercent()
	assert.NoError(t, err, "degraded mode is not an error")
	assert.Equal(t, 0.0, pct)
	assert.Equal(t, uint64(0), a.NetReceivedBytes(IfaceAuto))
	assert.Equal(t, "stub", a.Name())
}

func TestDetectAccounting_ReturnsSomething(t *testing.T) {
	a := DetectAccounting(nil)
	assert.NotNil(t, a)
	assert.NotEmpty(t, a.Name())
}
