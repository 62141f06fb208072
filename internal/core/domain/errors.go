package domain

import (
	"errors"
	"fmt"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrScheduleNotFound = errors.New("schedule not found")
var ErrFieldNotFound = errors.New("field not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ErrInvalidDateRange rejects schedules whose end date precedes the start date.
var ErrInvalidDateRange = errors.New("end date before start date")

// ErrProjectHasSchedules blocks deletion of a project that still owns schedules.
var ErrProjectHasSchedules = errors.New("project has schedules")

// ErrFieldInUse blocks deletion of a field still referenced by schedules.
var ErrFieldInUse = errors.New("field is in use")

// ErrIncompleteSchedules blocks completing a project while child schedules
// remain open. Returned wrapped in IncompleteSchedulesError.
var ErrIncompleteSchedules = errors.New("project has incomplete schedules")

// IncompleteSchedulesError reports how many schedules are still open.
// errors.Is(err, ErrIncompleteSchedules) matches it.
type IncompleteSchedulesError struct {
	Count int
}

func (e *IncompleteSchedulesError) Error() string {
	return fmt.Sprintf("project has %d incomplete schedule(s)", e.Count)
}

func (e *IncompleteSchedulesError) Unwrap() error {
	return ErrIncompleteSchedules
}
