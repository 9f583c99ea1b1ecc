package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeStorage      ErrorCode = "STORAGE_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeConflict     ErrorCode = "CONFLICT"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Quiz specific errors
	CodeQuizNotFound             ErrorCode = "QUIZ_NOT_FOUND"
	CodeCategoryNotFound         ErrorCode = "CATEGORY_NOT_FOUND"
	CodeResultNotFound           ErrorCode = "RESULT_NOT_FOUND"
	CodeLeaderboardEntryNotFound ErrorCode = "LEADERBOARD_ENTRY_NOT_FOUND"
	CodeSessionNotFound          ErrorCode = "SESSION_NOT_FOUND"
	CodeInvalidTransition        ErrorCode = "INVALID_TRANSITION"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches on Code so errors.Is(err, ErrQuizNotFound) works against wrapped instances.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
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

// WithContext attaches a detail field rendered by the HTTP error handler.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrQuizNotFound             = NewError(CodeQuizNotFound, "quiz not found", nil)
	ErrCategoryNotFound         = NewError(CodeCategoryNotFound, "category not found", nil)
	ErrLeaderboardEntryNotFound = NewError(CodeLeaderboardEntryNotFound, "leaderboard entry not found", nil)
	ErrSessionNotFound          = NewError(CodeSessionNotFound, "session not found", nil)
	ErrInvalidTransition        = NewError(CodeInvalidTransition, "invalid session transition", nil)
)

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// NewStorageError wraps a persistence failure. The cause is logged, never rendered.
func NewStorageError(message string, err error) *DomainError {
	return NewError(CodeStorage, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewConflictError(message string) *DomainError {
	return NewError(CodeConflict, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found: %s", quizID), nil).
		WithContext("quizId", quizID)
}

func NewCategoryNotFoundError(ref string) *DomainError {
	return NewError(CodeCategoryNotFound, fmt.Sprintf("Category not found: %s", ref), nil)
}

func NewLeaderboardEntryNotFoundError(userID string) *DomainError {
	return NewError(CodeLeaderboardEntryNotFound, fmt.Sprintf("Leaderboard entry not found for user: %s", userID), nil).
		WithContext("userId", userID)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Session not found: %s", sessionID), nil)
}

func NewInvalidTransitionError(from SessionState, action string) *DomainError {
	return NewError(CodeInvalidTransition, fmt.Sprintf("cannot %s a session that is %s", action, from), nil)
}

// ValidationError describes one invalid field of a request.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects field errors; it is returned as a single error by validators.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}
