// Package calendar builds the month and week grids the schedule views render.
// Everything here is a pure function of the entry list, the requested range
// and the (optional) holiday oracle; nothing touches storage.
package calendar

import (
	"context"
	"sort"
	"time"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// HolidayOracle reports designated holidays. Implementations are best-effort:
// the grid treats a lookup error as "not a holiday".
type HolidayOracle interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// Entry is one schedule joined with its project, annotated with the
// assignee's colour pair.
type Entry struct {
	Schedule *domain.Schedule
	Project  *domain.Project
	Color    ColorPair
}

// DayCell is a single day in the grid. Day is 0 for padding cells belonging
// to an adjacent month; those carry no schedules but keep accurate flags.
type DayCell struct {
	Date       time.Time
	Day        int
	IsSaturday bool
	IsSunday   bool
	IsHoliday  bool
	Entries    []Entry
}

// Grid is the render-ready matrix of day cells, one row per week.
type Grid struct {
	Rows [][]DayCell
}

// Builder assembles grids. The oracle may be nil: holidays then never match.
type Builder struct {
	palette Palette
	oracle  HolidayOracle
}

func NewBuilder(palette Palette, oracle HolidayOracle) *Builder {
	return &Builder{palette: palette, oracle: oracle}
}

// Annotate attaches the assignee colour pair to each schedule/project pair
// and sorts the entries by assignee last name, first name, username, project
// name and start date. Cell bucketing later preserves this order.
func (b *Builder) Annotate(schedules []*domain.Schedule, projects map[string]*domain.Project) []Entry {
	entries := make([]Entry, 0, len(schedules))
	for _, s := range schedules {
		p, ok := projects[s.ProjectID]
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Schedule: s,
			Project:  p,
			Color:    b.palette.PairFor(p.AssignedTo.UserNo),
		})
	}
	SortEntries(entries)
	return entries
}

// SortEntries orders entries by the fixed composite key used everywhere a
// schedule list is rendered.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Project.AssignedTo.LastName != b.Project.AssignedTo.LastName {
			return a.Project.AssignedTo.LastName < b.Project.AssignedTo.LastName
		}
		if a.Project.AssignedTo.FirstName != b.Project.AssignedTo.FirstName {
			return a.Project.AssignedTo.FirstName < b.Project.AssignedTo.FirstName
		}
		if a.Project.AssignedTo.Username != b.Project.AssignedTo.Username {
			return a.Project.AssignedTo.Username < b.Project.AssignedTo.Username
		}
		if a.Project.Name != b.Project.Name {
			return a.Project.Name < b.Project.Name
		}
		return a.Schedule.StartDate.Before(b.Schedule.StartDate)
	})
}

// MonthGrid builds the grid for a calendar month: Sunday-first complete weeks
// covering the 1st through the last day, with leading/trailing cells from the
// adjacent months as Day=0 padding.
func (b *Builder) MonthGrid(ctx context.Context, year int, month time.Month, entries []Entry) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	// Back up to the Sunday on or before the 1st.
	cur := first.AddDate(0, 0, -int(first.Weekday()))

	var rows [][]DayCell
	for !cur.After(last) {
		row := make([]DayCell, 0, 7)
		for i := 0; i < 7; i++ {
			cell := b.cell(ctx, cur, entries)
			if cur.Month() != month {
				cell.Day = 0
				cell.Entries = nil
			}
			row = append(row, cell)
			cur = cur.AddDate(0, 0, 1)
		}
		rows = append(rows, row)
	}
	return Grid{Rows: rows}
}

// WeekGrid builds a single row of 7 consecutive days starting at weekStart.
func (b *Builder) WeekGrid(ctx context.Context, weekStart time.Time, entries []Entry) Grid {
	start := domain.DateOf(weekStart)
	row := make([]DayCell, 0, 7)
	for i := 0; i < 7; i++ {
		row = append(row, b.cell(ctx, start.AddDate(0, 0, i), entries))
	}
	return Grid{Rows: [][]DayCell{row}}
}

// cell builds one day cell: weekday/holiday flags plus the schedules active
// that day. Schedules are never shown on Sundays or holidays, even though
// those days still count toward a schedule's duration. Saturdays are shown.
func (b *Builder) cell(ctx context.Context, d time.Time, entries []Entry) DayCell {
	cell := DayCell{
		Date:       d,
		Day:        d.Day(),
		IsSaturday: d.Weekday() == time.Saturday,
		IsSunday:   d.Weekday() == time.Sunday,
		IsHoliday:  b.isHoliday(ctx, d),
	}
	if cell.IsSunday || cell.IsHoliday {
		return cell
	}
	for _, e := range entries {
		if e.Schedule.Contains(d) {
			cell.Entries = append(cell.Entries, e)
		}
	}
	return cell
}

func (b *Builder) isHoliday(ctx context.Context, d time.Time) bool {
	if b.oracle == nil {
		return false
	}
	ok, err := b.oracle.IsHoliday(ctx, d)
	if err != nil {
		return false
	}
	return ok
}
