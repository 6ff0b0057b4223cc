package models

import (
	"errors"
	"strings"
)

var (
	// ErrConflict is returned when a participant name is already registered
	ErrConflict = errors.New("participant already registered")
	// ErrNotFound is returned when an action is made by a name that is not registered
	ErrNotFound = errors.New("participant not registered")
	// ErrStoreUnavailable wraps every failure of the underlying store
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError holds every validation message found on a payload
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, ", ")
}

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}
