package ports

import "time"

// Clock supplies the current instant and the current local calendar date.
// All derived status and grid logic is a pure function of Today plus stored
// data, so tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
	Today() time.Time
}
