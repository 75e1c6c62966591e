package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTransport    ErrorType = "TRANSPORT"
	ErrRateLimit    ErrorType = "RATE_LIMIT"
	ErrNotFound     ErrorType = "NOT_FOUND"
	ErrParse        ErrorType = "PARSE"
	ErrInvalidInput ErrorType = "INVALID_INPUT"
	ErrCompletion   ErrorType = "COMPLETION"
	ErrInternal     ErrorType = "INTERNAL"
)

// User-facing message strings. Screens display these verbatim, so every
// failure that reaches a screen resolves to exactly one string via
// UserMessage.
const (
	MsgGenericError = "An error occurred"
	MsgRateLimited  = "GitHub API rate limit exceeded. Please try again later."
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// NewTransportError creates a new transport error
func NewTransportError(message string, cause error) *AppError {
	return New(ErrTransport, message, cause)
}

// NewRateLimitError creates a new rate limit error
func NewRateLimitError(cause error) *AppError {
	return New(ErrRateLimit, MsgRateLimited, cause)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, cause error) *AppError {
	return New(ErrNotFound, message, cause)
}

// NewParseError creates a new parse error
func NewParseError(message string, cause error) *AppError {
	return New(ErrParse, message, cause)
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return New(ErrInvalidInput, message, nil)
}

// NewCompletionError creates a new completion endpoint error
func NewCompletionError(message string, cause error) *AppError {
	return New(ErrCompletion, message, cause)
}

// IsRateLimit checks if the error is a rate limit error
func IsRateLimit(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrRateLimit
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrNotFound
	}
	return false
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrInvalidInput
	}
	return false
}

// IsParse checks if the error is a parse error
func IsParse(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ErrParse
	}
	return false
}

// UserMessage resolves an error to the string a screen should display.
// Rate limit errors keep their advisory message, not found and parse errors
// keep their specific description, everything else collapses to the generic
// message.
func UserMessage(err error) string {
	appErr, ok := err.(*AppError)
	if !ok {
		return MsgGenericError
	}
	switch appErr.Type {
	case ErrRateLimit:
		return MsgRateLimited
	case ErrNotFound, ErrParse, ErrInvalidInput, ErrCompletion:
		if appErr.Message != "" {
			return appErr.Message
		}
	}
	return MsgGenericError
}
