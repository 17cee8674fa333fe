package apperror

import "fmt"

// FieldError carries a per-field message in the shape the HR core API uses on
// rejected submissions ({"field": "startDate", "defaultMessage": "..."}).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"defaultMessage"`
}

type AppError struct {
	Code        string // Error code (e.g., INVALID_INPUT)
	Message     string // User-friendly message
	HTTPStatus  int    // HTTP status code
	FieldErrors []FieldError
	Err         error // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithErr returns a copy wrapping the underlying cause. The shared error
// vars stay untouched.
func (e *AppError) WithErr(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// WithFields returns a copy carrying field-level errors.
func (e *AppError) WithFields(fields []FieldError) *AppError {
	clone := *e
	clone.FieldErrors = fields
	return &clone
}
