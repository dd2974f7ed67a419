package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Invalid interval", "Use a duration like 1s or 500ms.")

	if err.Code != ErrConfig {
		t.Errorf("expected code %s, got %s", ErrConfig, err.Code)
	}
	if err.Message != "Invalid interval" {
		t.Errorf("unexpected message: %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestError_Format(t *testing.T) {
	err := New(ErrQuery, "GPU 0 query failed", "Check that the NVIDIA driver is loaded.")
	out := err.Error()

	if !strings.Contains(out, "✗ GPU 0 query failed") {
		t.Errorf("missing failure line in output: %q", out)
	}
	if !strings.Contains(out, "Check that the NVIDIA driver is loaded.") {
		t.Errorf("missing suggestion in output: %q", out)
	}
}

func TestError_FormatWithCause(t *testing.T) {
	cause := fmt.Errorf("exit status 6")
	err := WrapWithCode(cause, ErrQuery, "GPU 1 query failed", "")
	out := err.Error()

	if !strings.Contains(out, "exit status 6") {
		t.Errorf("missing cause in output: %q", out)
	}
}

func TestWrap_DefaultsToExec(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "Couldn't start nvidia-smi")
	if err.Code != ErrExec {
		t.Errorf("expected code %s, got %s", ErrExec, err.Code)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(cause, "wrapped")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{"matching code", New(ErrQuery, "q", ""), ErrQuery, true},
		{"different code", New(ErrConfig, "c", ""), ErrQuery, false},
		{"plain error", fmt.Errorf("plain"), ErrQuery, false},
		{"nil error", nil, ErrQuery, false},
		{"wrapped structured error", fmt.Errorf("outer: %w", New(ErrQuery, "q", "")), ErrQuery, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsQueryFailed(t *testing.T) {
	err := NewQueryFailed(2, fmt.Errorf("malformed output"))

	if !IsQueryFailed(err) {
		t.Error("IsQueryFailed should match NewQueryFailed errors")
	}
	if IsQueryFailed(fmt.Errorf("other")) {
		t.Error("IsQueryFailed should not match plain errors")
	}
	if !strings.Contains(err.Error(), "GPU 2") {
		t.Errorf("expected GPU index in message, got %q", err.Error())
	}
}
