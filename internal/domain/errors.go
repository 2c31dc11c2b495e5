package domain

import "errors"

// Session validation errors
var (
	ErrUserIDRequired       = errors.New("user id is required")
	ErrSessionDateRequired  = errors.New("session date is required")
	ErrMadeExceedsAttempted = errors.New("made shots cannot exceed attempted shots")
)
