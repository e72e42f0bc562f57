package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Facility errors
	ErrFacilityNotFound = errors.New("facility not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("time slot no longer available")
	ErrAlreadyCanceled     = errors.New("reservation is already canceled")
	ErrNotOwner            = errors.New("reservation belongs to another user")
	ErrCutoffPassed        = errors.New("modification window has closed")
	ErrInvalidCandidate    = errors.New("reservation request violates booking policy")
	ErrNotExportable       = errors.New("only confirmed reservations can be exported")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
