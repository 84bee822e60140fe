package planning

import (
	"errors"
	"fmt"
)

// Scheduler errors. Lookup failures never leave partial writes behind.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrPlanningNotFound = errors.New("planning not found")
	ErrUnknownWeek      = errors.New("week id is outside the selectable window")
	ErrInvalidSlotID    = errors.New("slot id must be of the form \"08:00-10:00\"")
	ErrMissingClassName = errors.New("class name is required")
)

// MissingFieldError reports a required session field left empty by the caller.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}
