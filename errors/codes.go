package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Capture-model errors
const (
	// ErrCodeStepConsumed indicates a consuming step was invoked a second time.
	ErrCodeStepConsumed ErrorCode = "STEP_CONSUMED"
	// ErrCodeExclusiveAccess indicates a mutable step was entered while
	// another call still held its state.
	ErrCodeExclusiveAccess ErrorCode = "EXCLUSIVE_ACCESS"
)

// Evaluation errors
const (
	// ErrCodePipelineConsumed indicates a single-shot pipeline was run twice.
	ErrCodePipelineConsumed ErrorCode = "PIPELINE_CONSUMED"
	// ErrCodeCancelled indicates the caller stopped the run through its context.
	ErrCodeCancelled ErrorCode = "CANCELLED"
	// ErrCodeSinkFailed indicates the consumer of a run rejected an element.
	ErrCodeSinkFailed ErrorCode = "SINK_FAILED"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// ErrCodeInternal indicates an unexpected failure.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

// misuseCodes are raised by programming errors rather than by data.
var misuseCodes = map[ErrorCode]bool{
	ErrCodeStepConsumed:     true,
	ErrCodeExclusiveAccess:  true,
	ErrCodePipelineConsumed: true,
}

// IsMisuseCode reports whether code signals incorrect use of a single-use
// or exclusively owned resource.
func IsMisuseCode(code ErrorCode) bool {
	return misuseCodes[code]
}
