// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeMissingRequiredOption indicates a required option resolved to no value.
	ErrCodeMissingRequiredOption ErrorCode = "MISSING_REQUIRED_OPTION"
	// ErrCodeTypeMismatch indicates an option value does not match its declared kind.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
)

// Context keys used by validation errors.
const (
	ContextOption   = "option"
	ContextExpected = "expected"
	ContextActual   = "actual"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// MissingRequiredOption reports a required option that has no value after
// user params, OS overlay and catalog default were consulted.
func MissingRequiredOption(name string) *StructuredError {
	return NewWithContext(ErrCodeMissingRequiredOption,
		fmt.Sprintf("required option %q has no value", name),
		map[string]any{ContextOption: name})
}

// TypeMismatch reports an option value whose runtime type does not match the
// option kind.
func TypeMismatch(name, expected, actual string) *StructuredError {
	return NewWithContext(ErrCodeTypeMismatch,
		fmt.Sprintf("option %q expects %s, got %s", name, expected, actual),
		map[string]any{
			ContextOption:   name,
			ContextExpected: expected,
			ContextActual:   actual,
		})
}

// CodeOf returns the code of the first StructuredError in err's chain, or an
// empty code when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err's chain contains a StructuredError with code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// ContextValue returns the context value stored under key by the first
// StructuredError in err's chain.
func ContextValue(err error, key string) (any, bool) {
	var se *StructuredError
	if !stderrors.As(err, &se) || se.Context == nil {
		return nil, false
	}
	v, ok := se.Context[key]
	return v, ok
}
