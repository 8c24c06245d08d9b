package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in callers predictable.

// ===== Event Errors =====
var (
	ErrEventNotFound = errors.New("event not found")
	ErrSlugExists    = errors.New("an event with this slug already exists")
)
