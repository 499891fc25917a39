package rules

import "fmt"

// ErrUnknownContentType indicates a content-type id with no registered profile.
// This is a configuration fault of the caller, never a content-quality outcome.
type ErrUnknownContentType struct {
	ContentType string
}

func (e *ErrUnknownContentType) Error() string {
	return fmt.Sprintf("unknown content type: %s", e.ContentType)
}

// ProfileError indicates the embedded profile table failed to load or validate.
// It is fatal at registry construction.
type ProfileError struct {
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile error: %s", e.Message)
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}
