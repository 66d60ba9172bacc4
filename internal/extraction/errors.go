package extraction

import "fmt"

// ExtractionErrorCode represents specific extraction error types.
type ExtractionErrorCode string

const (
	ErrInvalidDocument   ExtractionErrorCode = "INVALID_DOCUMENT"
	ErrTextLayerEmpty    ExtractionErrorCode = "TEXT_LAYER_EMPTY"
	ErrToolUnavailable   ExtractionErrorCode = "TOOL_UNAVAILABLE"
	ErrVisionUnavailable ExtractionErrorCode = "VISION_UNAVAILABLE"
	ErrVisionRateLimited ExtractionErrorCode = "VISION_RATE_LIMITED"
)

// ExtractionError is a structured error for a single strategy failure.
type ExtractionError struct {
	Code      ExtractionErrorCode
	Message   string
	Method    string // provenance tag of the failing strategy
	Retryable bool
	Cause     error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// IsRetryable returns whether this error is retryable.
func (e *ExtractionError) IsRetryable() bool {
	return e.Retryable
}
