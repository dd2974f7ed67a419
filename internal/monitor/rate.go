package monitor

const bytesPerMB = 1024 * 1024

// DownloadRateMBps converts two cumulative received-byte counter readings and
// the elapsed time between them into a download rate in MB/s.
//
// A non-positive delta returns 0 to guard against clock anomalies and
// zero-interval calls. A counter that went backwards (interface reset or
// wraparound) reports 0 rather than a negative rate.
func DownloadRateMBps(prevBytes, currBytes uint64, deltaSeconds float64) float64 {
	if deltaSeconds <= 0 {
		return 0.0
	}
	if currBytes < prevBytes {
		return 0.0
	}
	return float64(currBytes-prevBytes) / float64(bytesPerMB) / deltaSeconds
}
