// Package parsers converts raw tool and kernel-file output into metric values.
package parsers

import (
	"fmt"
	"strconv"
	"strings"
)

// GPUQuery holds the three values parsed from one nvidia-smi query line.
type GPUQuery struct {
	UtilizationPercent float64
	PowerWatts         float64
	TemperatureCelsius float64
}

// CountGPUs returns the number of GPUs listed by `nvidia-smi --list-gpus`.
// The output is newline-delimited, one GPU per line.
func CountGPUs(output string) int {
	output = strings.TrimSpace(output)
	if output == "" {
		return 0
	}
	return len(strings.Split(output, "\n"))
}

// ParseGPUQuery parses one line of nvidia-smi CSV output.
// Expected input is from: nvidia-smi --query-gpu=utilization.gpu,power.draw,temperature.gpu --format=csv,noheader,nounits -i <index>
// Example: "45, 220.51, 65"
func ParseGPUQuery(output string) (GPUQuery, error) {
	var q GPUQuery

	output = strings.TrimSpace(output)
	if output == "" {
		return q, fmt.Errorf("empty nvidia-smi output")
	}

	// Only the first line matters; driver warnings may follow.
	line := output
	if idx := strings.IndexByte(output, '\n'); idx >= 0 {
		line = output[:idx]
	}

	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return q, fmt.Errorf("nvidia-smi output has insufficient fields: expected 3, got %d", len(fields))
	}

	util, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return q, fmt.Errorf("failed to parse GPU utilization '%s': %w", strings.TrimSpace(fields[0]), err)
	}

	power, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return q, fmt.Errorf("failed to parse GPU power '%s': %w", strings.TrimSpace(fields[1]), err)
	}

	temp, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return q, fmt.Errorf("failed to parse GPU temperature '%s': %w", strings.TrimSpace(fields[2]), err)
	}

	q.UtilizationPercent = util
	q.PowerWatts = power
	q.TemperatureCelsius = temp
	return q, nil
}
