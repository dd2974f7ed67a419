package monitor

// DefaultHistorySize is the number of data points retained per metric.
const DefaultHistorySize = 60

// History stores recent CPU percentages and NET rates in ring buffers for
// sparkline rendering. It is render-only state: the rate computation itself
// uses only the single retained previous NetSample. History is touched only
// from the Bubble Tea update loop, so no locking is needed.
type History struct {
	cpu *ringBuffer
	net *ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		cpu: newRingBuffer(size),
		net: newRingBuffer(size),
	}
}

// Push records one tick's CPU percentage and NET rate.
func (h *History) Push(cpuPercent, netRateMBps float64) {
	h.cpu.push(cpuPercent)
	h.net.push(netRateMBps)
}

// CPUHistory returns up to the last count CPU percentage values.
func (h *History) CPUHistory(count int) []float64 {
	return h.cpu.getLast(count)
}

// NetHistory returns up to the last count NET rate values.
func (h *History) NetHistory(count int) []float64 {
	return h.net.getLast(count)
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, overwriting the oldest when full.
func (b *ringBuffer) push(v float64) {
	b.data[b.head] = v
	b.head = (b.head + 1) % b.size
	if b.count < b.size {
		b.count++
	}
}

// getLast returns up to count of the most recent values, oldest first.
func (b *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || b.count == 0 {
		return nil
	}
	if count > b.count {
		count = b.count
	}

	out := make([]float64, count)
	start := (b.head - count + b.size) % b.size
	for i := 0; i < count; i++ {
		out[i] = b.data[(start+i)%b.size]
	}
	return out
}
