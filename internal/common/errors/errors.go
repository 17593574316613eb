// Package errors provides standardized error handling for the activities API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotSignedUp      ErrorCode = "NOT_SIGNED_UP"
	ErrCodeCatalogInvalid   ErrorCode = "CATALOG_INVALID"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured application error. Message is what the
// caller sees in the response detail; Details carries internal context for
// logs only.
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

// NewActivityNotFoundError creates the 404 error for an unknown activity name.
func NewActivityNotFoundError(activityName string) *APIError {
	return &APIError{
		Code:       ErrCodeActivityNotFound,
		Message:    "Activity not found",
		Details:    fmt.Sprintf("activity: %s", activityName),
		HTTPStatus: http.StatusNotFound,
		Timestamp:  time.Now().UTC(),
	}
}

// NewAlreadySignedUpError creates the 400 error for a duplicate signup.
func NewAlreadySignedUpError(email, activityName string) *APIError {
	return &APIError{
		Code:       ErrCodeAlreadySignedUp,
		Message:    fmt.Sprintf("%s is already signed up for %s", email, activityName),
		HTTPStatus: http.StatusBadRequest,
		Timestamp:  time.Now().UTC(),
	}
}

// NewNotSignedUpError creates the 400 error for unregistering an absent email.
func NewNotSignedUpError(email, activityName string) *APIError {
	return &APIError{
		Code:       ErrCodeNotSignedUp,
		Message:    fmt.Sprintf("%s is not signed up for %s", email, activityName),
		HTTPStatus: http.StatusBadRequest,
		Timestamp:  time.Now().UTC(),
	}
}

// NewCatalogInvalidError creates the startup error for a seed catalog that
// fails schema validation.
func NewCatalogInvalidError(details string) *APIError {
	return &APIError{
		Code:       ErrCodeCatalogInvalid,
		Message:    "Activity catalog failed validation",
		Details:    details,
		HTTPStatus: http.StatusInternalServerError,
		Timestamp:  time.Now().UTC(),
	}
}
