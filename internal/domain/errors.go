package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Generation errors
	CodeTransportFailure  ErrorCode = "TRANSPORT_FAILURE"
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	CodeInvalidQuizData   ErrorCode = "INVALID_QUIZ_DATA"

	// Session errors
	CodeInvalidState    ErrorCode = "INVALID_STATE"
	CodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
)

// User-facing messages for generation failures.
const (
	MsgTransportFailure  = "An error occurred while communicating with the AI. Check your connection or try a different topic."
	MsgMalformedResponse = "The AI returned a response in an unexpected format. Please try a different topic."
	MsgInvalidQuizData   = "The generated quiz data was invalid or empty. Please try again."
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail that is reported alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewTransportError(err error) *DomainError {
	return NewError(CodeTransportFailure, MsgTransportFailure, err)
}

func NewMalformedResponseError(err error) *DomainError {
	return NewError(CodeMalformedResponse, MsgMalformedResponse, err)
}

func NewInvalidQuizDataError(reason string) *DomainError {
	return NewError(CodeInvalidQuizData, MsgInvalidQuizData, errors.New(reason))
}

func NewInvalidStateError(message string) *DomainError {
	return NewError(CodeInvalidState, message, nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Session not found: %s", sessionID), nil)
}

// CodeOf returns the code of the first DomainError in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
