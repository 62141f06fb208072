package domain

import "time"

// ScheduleStatus is the derived lifecycle state of a schedule.
type ScheduleStatus string

const (
	StatusPending    ScheduleStatus = "pending"
	StatusInProgress ScheduleStatus = "in_progress"
	StatusCompleted  ScheduleStatus = "completed"
)

// Schedule is a dated task inside a project, tagged with a work field.
// StartDate and EndDate are inclusive calendar dates (midnight, local zone).
type Schedule struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	ProjectID   string         `json:"project_id" bson:"project_id"`
	FieldID     string         `json:"field_id" bson:"field_id"`
	FieldName   string         `json:"field_name" bson:"field_name"`
	StartDate   time.Time      `json:"start_date" bson:"start_date"`
	EndDate     time.Time      `json:"end_date" bson:"end_date"`
	Status      ScheduleStatus `json:"status" bson:"status"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// DurationDays returns the inclusive span in days.
func (s *Schedule) DurationDays() int {
	return int(DateOf(s.EndDate).Sub(DateOf(s.StartDate))/(24*time.Hour)) + 1
}

// Contains reports whether d falls inside [StartDate, EndDate].
func (s *Schedule) Contains(d time.Time) bool {
	day := DateOf(d)
	return !day.Before(DateOf(s.StartDate)) && !day.After(DateOf(s.EndDate))
}

// DeriveStatus computes the status for the given date. Pure: the caller
// decides whether to persist. Manual completion is sticky; it is never
// reverted by the date. Once the start date is reached the schedule stays
// in_progress indefinitely, even past the end date: there is no derived
// overdue state, only manual completion closes it.
func (s *Schedule) DeriveStatus(today time.Time) ScheduleStatus {
	if s.Status == StatusCompleted {
		return StatusCompleted
	}
	return statusFromDates(s.StartDate, today)
}

// ToggleCompletion flips between completed and the date-derived state.
// Reopening must recompute from the dates even though the entry state is
// completed, which DeriveStatus would keep sticky.
func (s *Schedule) ToggleCompletion(now time.Time) {
	if s.Status == StatusCompleted {
		s.Status = statusFromDates(s.StartDate, now)
		s.CompletedAt = nil
		return
	}
	s.Status = StatusCompleted
	t := now
	s.CompletedAt = &t
}

func statusFromDates(start, today time.Time) ScheduleStatus {
	if DateOf(today).Before(DateOf(start)) {
		return StatusPending
	}
	return StatusInProgress
}

// DateOf truncates t to its calendar date, normalised to UTC midnight so
// values from different zones compare and subtract cleanly.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
