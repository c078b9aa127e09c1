package errs

import "errors"

// Error taxonomy shared by the domain, usecase and handler layers.
// Concrete errors are Mark-ed with one of these so callers can use errors.Is.
var (
	// Malformed window/time input, rejected before any state change
	ErrValidation = errors.New("validation error")

	// Requested sub-slot is booked or already in the past; re-fetch free slots
	ErrSlotUnavailable = errors.New("slot unavailable")

	// Illegal state transition or an edit blocked by existing reservations
	ErrConflict = errors.New("conflict")

	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
