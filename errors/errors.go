package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches another *AppError by code, so sentinel-style comparisons work
// with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// StepConsumed reports a second invocation of a consuming step.
func StepConsumed(step string) *AppError {
	e := &AppError{Code: ErrCodeStepConsumed, Message: "step may be called at most once"}
	if step != "" {
		e.WithDetail("step", step)
	}
	return e
}

// ExclusiveAccess reports a mutable step entered while already in use.
func ExclusiveAccess(step string) *AppError {
	e := &AppError{Code: ErrCodeExclusiveAccess, Message: "mutable step state is already borrowed"}
	if step != "" {
		e.WithDetail("step", step)
	}
	return e
}

// PipelineConsumed reports a second run of a single-shot pipeline.
func PipelineConsumed() *AppError {
	return &AppError{
		Code:    ErrCodePipelineConsumed,
		Message: "pipeline source was already consumed; build a new pipeline or use a restartable factory",
	}
}

// Cancelled wraps a context error that stopped a run.
func Cancelled(cause error, pulled int) *AppError {
	return &AppError{
		Code: ErrCodeCancelled, Message: "run stopped before exhaustion",
		Details: map[string]any{"pulled": pulled}, Cause: cause,
	}
}

// SinkFailed wraps an error returned by a run's sink.
func SinkFailed(cause error, index int) *AppError {
	return &AppError{
		Code: ErrCodeSinkFailed, Message: fmt.Sprintf("sink rejected element %d", index),
		Details: map[string]any{"index": index}, Cause: cause,
	}
}

// InvalidInput creates an AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates an AppError for configuration that failed validation.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// Internal creates an AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: "an unexpected error occurred", Cause: cause}
}

// --- Inspection ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err (or anything it wraps) is an AppError with code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
