package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// InterfaceCounters holds cumulative I/O counters for one network interface.
type InterfaceCounters struct {
	Name    string
	RxBytes uint64
	TxBytes uint64
}

// ParseNetDev parses per-interface byte counters from /proc/net/dev output.
func ParseNetDev(procNetDev string) ([]InterfaceCounters, error) {
	var interfaces []InterfaceCounters
	scanner := bufio.NewScanner(strings.NewReader(procNetDev))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip header lines (first two lines)
		if lineNum <= 2 {
			continue
		}

		// Format: "  iface: bytes packets errs drop fifo frame compressed multicast | bytes packets..."
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.TrimSpace(parts[0])
		fields := strings.Fields(parts[1])

		// Need at least 9 fields to reach the transmit byte counter
		if len(fields) < 9 {
			continue
		}

		rxBytes, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rx_bytes for %s: %w", name, err)
		}

		txBytes, err := strconv.ParseUint(fields[8], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tx_bytes for %s: %w", name, err)
		}

		interfaces = append(interfaces, InterfaceCounters{
			Name:    name,
			RxBytes: rxBytes,
			TxBytes: txBytes,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning /proc/net/dev: %w", err)
	}

	return interfaces, nil
}

// ParseCPUStat parses the aggregate "cpu" line of /proc/stat into total and
// idle jiffies. Idle includes iowait. CPU percent is computed from the delta
// between two readings.
func ParseCPUStat(procStat string) (total, idle int64, err error) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return 0, 0, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
		}

		// Fields: cpu user nice system idle iowait irq softirq steal guest guest_nice
		for i := 1; i < len(fields); i++ {
			val, perr := strconv.ParseInt(fields[i], 10, 64)
			if perr != nil {
				return 0, 0, fmt.Errorf("failed to parse cpu field %d: %w", i, perr)
			}
			total += val

			// idle is field 4 (index 4), iowait is field 5 (index 5)
			if i == 4 || i == 5 {
				idle += val
			}
		}
		return total, idle, nil
	}

	if serr := scanner.Err(); serr != nil {
		return 0, 0, fmt.Errorf("error scanning /proc/stat: %w", serr)
	}
	return 0, 0, fmt.Errorf("no aggregate cpu line in /proc/stat")
}
