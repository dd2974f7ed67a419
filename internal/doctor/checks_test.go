package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCheck returns a canned result.
type fakeCheck struct {
	name   string
	status CheckStatus
}

func (c *fakeCheck) Name() string     { return c.name }
func (c *fakeCheck) Category() string { return "TEST" }
func (c *fakeCheck) Run() CheckResult {
	return CheckResult{Name: c.name, Status: c.status, Message: c.name}
}

func TestRunAll(t *testing.T) {
	checks := []Check{
		&fakeCheck{name: "a", status: StatusPass},
		&fakeCheck{name: "b", status: StatusFail},
	}

	results := RunAll(checks)

	assert.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, StatusFail, results[1].Status)
}

func TestCountByStatus(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarn},
		{Status: StatusFail},
	}

	counts := CountByStatus(results)

	assert.Equal(t, 2, counts[StatusPass])
	assert.Equal(t, 1, counts[StatusWarn])
	assert.Equal(t, 1, counts[StatusFail])
}

func TestHasFailures(t *testing.T) {
	assert.False(t, HasFailures([]CheckResult{{Status: StatusPass}, {Status: StatusWarn}}))
	assert.True(t, HasFailures([]CheckResult{{Status: StatusPass}, {Status: StatusFail}}))
	assert.False(t, HasFailures(nil))
}

func TestCheckStatus_String(t *testing.T) {
	assert.Equal(t, "pass", StatusPass.String())
	assert.Equal(t, "warn", StatusWarn.String())
	assert.Equal(t, "fail", StatusFail.String())
	assert.Equal(t, "unknown", CheckStatus(42).String())
}

func TestDefaultChecks_Categories(t *testing.T) {
	checks := DefaultChecks()

	assert.Len(t, checks, 3)
	categories := make(map[string]bool)
	for _, c := range checks {
		categories[c.Category()] = true
		assert.NotEmpty(t, c.Name())
	}
	assert.True(t, categories["GPU"])
	assert.True(t, categories["ACCOUNTING"])
	assert.True(t, categories["TERMINAL"])
}

func TestAccountingCheck_Run(t *testing.T) {
	// Whatever facility the host has, the check must produce a populated,
	// non-failing result: a missing facility is degraded mode, not an error.
	result := (&AccountingCheck{}).Run()

	assert.NotEmpty(t, result.Message)
	assert.NotEqual(t, StatusFail, result.Status)
}

func TestTerminalCheck_Run(t *testing.T) {
	result := (&TerminalCheck{}).Run()

	assert.Equal(t, "terminal_colors", result.Name)
	assert.NotEmpty(t, result.Message)
}
