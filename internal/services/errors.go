package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrEmptyName is returned by get-or-create when the trimmed name is
	// empty. No blank vocabulary records are ever created.
	ErrEmptyName = errors.New("name is empty")

	// ErrNoValidCuts is returned when an asado form carries no cut with a
	// positive weight. Nothing is persisted in that case.
	ErrNoValidCuts = errors.New("asado needs at least one cut with a positive weight")

	// ErrInvalidForm is returned when the form fails validation for any
	// other reason (bad date, rating out of range, blank names)
	ErrInvalidForm = errors.New("invalid asado form")
)

// PartialWriteError reports a create/update join sequence that failed
// partway through. The asado row and any joins written before the failure
// remain persisted; no compensating rollback is performed.
type PartialWriteError struct {
	AsadoID uuid.UUID
	Step    string
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write on asado %s (%s): %v", e.AsadoID, e.Step, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
