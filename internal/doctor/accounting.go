package doctor

import (
	"fmt"

	"github.com/rileyhilliard/gpubar/internal/logger"
	"github.com/rileyhilliard/gpubar/internal/monitor"
)

// AccountingCheck reports which CPU/NET accounting facility would be selected.
type AccountingCheck struct{}

// Name returns the check identifier.
func (c *AccountingCheck) Name() string {
	return "accounting"
}

// Category returns the check category.
func (c *AccountingCheck) Category() string {
	return "ACCOUNTING"
}

// Run executes the accounting facility check.
func (c *AccountingCheck) Run() CheckResult {
	acct := monitor.DetectAccounting(logger.Noop())

	switch acct.Name() {
	case "stub":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "no CPU/NET accounting facility available",
			Suggestion: "CPU and NET slots will show zeros. On Linux, check that /proc is mounted.",
		}
	case "procfs":
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "using /proc fallback for CPU/NET counters",
		}
	default:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("CPU/NET accounting via %s", acct.Name()),
		}
	}
}
