package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/gpubar/internal/monitor"
)

// probeTimeout bounds the doctor's nvidia-smi invocations.
const probeTimeout = 10 * time.Second

// SMICheck verifies that nvidia-smi is on PATH and answers a listing probe.
// This is the same condition that is fatal at bar startup.
type SMICheck struct{}

// Name returns the check identifier.
func (c *SMICheck) Name() string {
	return "nvidia_smi"
}

// Category returns the check category.
func (c *SMICheck) Category() string {
	return "GPU"
}

// Run executes the nvidia-smi availability and probe check.
func (c *SMICheck) Run() CheckResult {
	path, err := monitor.LookupSMI()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "nvidia-smi not found in PATH",
			Suggestion: "Install the NVIDIA drivers & CUDA toolkit, or add nvidia-smi to your PATH.",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	collector := monitor.NewCollector(path, monitor.IfaceAuto, nil, nil)
	count, err := collector.DetectGPUCount(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "nvidia-smi found but listing GPUs failed",
			Suggestion: "Run 'nvidia-smi --list-gpus' by hand to see what the driver reports.",
		}
	}

	if count == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "nvidia-smi reports no GPUs",
			Suggestion: "The bar will start but show no GPU slots. Check the driver installation.",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("nvidia-smi at %s, %d GPU(s) detected", path, count),
	}
}
