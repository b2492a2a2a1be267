package repository

import "errors"

var (
	// ErrNotFound is returned when the addressed record does not exist at all.
	ErrNotFound = errors.New("record not found")

	// ErrStatusConflict is returned when the record exists but is not in the
	// status the operation requires, e.g. approving a record that is no
	// longer Pending. Transitions carry a status precondition so a repeated
	// approve/reject cannot fire twice.
	ErrStatusConflict = errors.New("record is not in the required status")
)
