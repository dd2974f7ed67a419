package ui

// Unicode symbols for status indicators in doctor and error output.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check failed
	SymbolWarning = "⚠" // Check passed with caveats
)
