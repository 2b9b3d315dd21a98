package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "missing required option",
			err:      MissingRequiredOption("admin_email"),
			expected: `[MISSING_REQUIRED_OPTION] required option "admin_email" has no value`,
		},
		{
			name:     "type mismatch",
			err:      TypeMismatch("sleep_time", "float", "string"),
			expected: `[TYPE_MISMATCH] option "sleep_time" expects float, got string`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", MissingRequiredOption("lock_file"))

	if got := CodeOf(wrapped); got != ErrCodeMissingRequiredOption {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeMissingRequiredOption)
	}
	if !IsCode(wrapped, ErrCodeMissingRequiredOption) {
		t.Error("IsCode() = false, want true")
	}
	if IsCode(nil, ErrCodeMissingRequiredOption) {
		t.Error("IsCode(nil) = true, want false")
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestContextValue(t *testing.T) {
	err := fmt.Errorf("outer: %w", TypeMismatch("cfg_dir", "list", "int"))

	tests := []struct {
		key  string
		want any
	}{
		{ContextOption, "cfg_dir"},
		{ContextExpected, "list"},
		{ContextActual, "int"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ContextValue(err, tt.key)
			if !ok {
				t.Fatalf("ContextValue(%q) not found", tt.key)
			}
			if got != tt.want {
				t.Errorf("ContextValue(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	if _, ok := ContextValue(New(ErrCodeInternal, "x"), ContextOption); ok {
		t.Error("expected no context on plain structured error")
	}
}
