package domain

import (
	"errors"
	"fmt"
)

// ErrCampaignNotFound is returned when a campaign id does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// ValidationError reports a malformed field on an incoming request. The
// HTTP layer maps it to a 400 with the field name so the client can surface
// the message inline next to the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PlatformError wraps a failure from one platform adapter during plan
// execution. Execution continues with the remaining platforms; the errors
// are collected and reported together.
type PlatformError struct {
	Platform Platform
	Err      error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("failed to create %s campaign: %v", e.Platform, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }
