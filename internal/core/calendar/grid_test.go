package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// stubOracle marks a fixed date set as holidays.
type stubOracle struct {
	holidays map[string]bool
	err      error
}

func (o *stubOracle) IsHoliday(_ context.Context, d time.Time) (bool, error) {
	if o.err != nil {
		return false, o.err
	}
	return o.holidays[d.Format("2006-01-02")], nil
}

func entryFor(userNo int, lastName, projectName string, start, end time.Time) ([]*domain.Schedule, map[string]*domain.Project) {
	project := &domain.Project{
		ID:   "p-" + projectName,
		Name: projectName,
		AssignedTo: domain.UserRef{
			ID:       "u-" + lastName,
			UserNo:   userNo,
			Username: lastName,
			LastName: lastName,
		},
	}
	sched := &domain.Schedule{
		ID:        "s-" + projectName,
		ProjectID: project.ID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.StatusInProgress,
	}
	return []*domain.Schedule{sched}, map[string]*domain.Project{project.ID: project}
}

func TestMonthGrid_June2024_Shape(t *testing.T) {
	b := NewBuilder(DefaultPalette(), nil)
	grid := b.MonthGrid(context.Background(), 2024, time.June, nil)

	// June 2024 starts on a Saturday, so Sunday-first weeks need six rows.
	if len(grid.Rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(grid.Rows))
	}
	for i, row := range grid.Rows {
		if len(row) != 7 {
			t.Fatalf("row %d: expected 7 cells, got %d", i, len(row))
		}
		if row[0].Date.Weekday() != time.Sunday {
			t.Fatalf("row %d must start on Sunday, starts %s", i, row[0].Date.Weekday())
		}
	}

	// First row: May 26 .. June 1 with five leading padding cells.
	firstRow := grid.Rows[0]
	for i := 0; i < 6; i++ {
		if firstRow[i].Day != 0 {
			t.Fatalf("cell %d should be padding, got day %d", i, firstRow[i].Day)
		}
	}
	if firstRow[6].Day != 1 || !firstRow[6].IsSaturday {
		t.Fatalf("June 1 should be the first row's Saturday, got day %d", firstRow[6].Day)
	}
	if !grid.Rows[1][0].IsSunday || grid.Rows[1][0].Day != 2 {
		t.Fatalf("June 2 should be the second row's Sunday")
	}

	// Last row: June 30 then six trailing padding cells.
	lastRow := grid.Rows[5]
	if lastRow[0].Day != 30 {
		t.Fatalf("expected June 30 in the last row, got %d", lastRow[0].Day)
	}
	for i := 1; i < 7; i++ {
		if lastRow[i].Day != 0 {
			t.Fatalf("cell %d of the last row should be padding", i)
		}
	}
}

func TestMonthGrid_PaddingCellsCarryNoEntries(t *testing.T) {
	// Schedule spans the May tail shown in June's first row.
	schedules, projects := entryFor(1, "sato", "press", date(2024, 5, 27), date(2024, 6, 3))
	b := NewBuilder(DefaultPalette(), nil)
	entries := b.Annotate(schedules, projects)
	grid := b.MonthGrid(context.Background(), 2024, time.June, entries)

	// May 27 (Monday) is inside the schedule but belongs to the padding.
	padding := grid.Rows[0][1]
	if padding.Day != 0 {
		t.Fatalf("expected padding cell, got day %d", padding.Day)
	}
	if len(padding.Entries) != 0 {
		t.Fatalf("padding cells must not list schedules")
	}

	// June 3 (Monday) is a real cell and must list it.
	monday := grid.Rows[1][1]
	if monday.Day != 3 || len(monday.Entries) != 1 {
		t.Fatalf("expected June 3 with one entry, got day %d with %d", monday.Day, len(monday.Entries))
	}
}

func TestCell_SundaySuppressedSaturdayShown(t *testing.T) {
	// June 7..10 2024 covers Friday through Monday.
	schedules, projects := entryFor(1, "sato", "press", date(2024, 6, 7), date(2024, 6, 10))
	b := NewBuilder(DefaultPalette(), nil)
	entries := b.Annotate(schedules, projects)
	grid := b.WeekGrid(context.Background(), date(2024, 6, 2), entries)

	row := grid.Rows[0]
	saturday := row[6] // June 8
	if !saturday.IsSaturday {
		t.Fatalf("expected Saturday at index 6")
	}
	if len(saturday.Entries) != 1 {
		t.Fatalf("Saturday must show schedules, got %d", len(saturday.Entries))
	}

	grid = b.WeekGrid(context.Background(), date(2024, 6, 9), entries)
	sunday := grid.Rows[0][0] // June 9
	if !sunday.IsSunday {
		t.Fatalf("expected Sunday at index 0")
	}
	if len(sunday.Entries) != 0 {
		t.Fatalf("Sunday must suppress schedules")
	}
	monday := grid.Rows[0][1] // June 10, still inside the range
	if len(monday.Entries) != 1 {
		t.Fatalf("the day after a suppressed Sunday must still show the schedule")
	}
}

func TestCell_HolidaySuppressed(t *testing.T) {
	schedules, projects := entryFor(1, "sato", "press", date(2024, 6, 10), date(2024, 6, 14))
	oracle := &stubOracle{holidays: map[string]bool{"2024-06-12": true}}
	b := NewBuilder(DefaultPalette(), oracle)
	entries := b.Annotate(schedules, projects)
	grid := b.WeekGrid(context.Background(), date(2024, 6, 9), entries)

	wednesday := grid.Rows[0][3]
	if !wednesday.IsHoliday {
		t.Fatalf("June 12 should be flagged as holiday")
	}
	if len(wednesday.Entries) != 0 {
		t.Fatalf("holidays must suppress schedules")
	}
	if len(grid.Rows[0][4].Entries) != 1 {
		t.Fatalf("the day after a holiday must still show the schedule")
	}
}

func TestCell_OracleErrorMeansNoHoliday(t *testing.T) {
	oracle := &stubOracle{err: errors.New("redis down")}
	b := NewBuilder(DefaultPalette(), oracle)
	grid := b.WeekGrid(context.Background(), date(2024, 6, 9), nil)

	for _, cell := range grid.Rows[0] {
		if cell.IsHoliday {
			t.Fatalf("oracle failure must degrade to no holidays")
		}
	}
}

func TestWeekGrid_SevenConsecutiveDays(t *testing.T) {
	b := NewBuilder(DefaultPalette(), nil)
	start := date(2024, 6, 9)
	grid := b.WeekGrid(context.Background(), start, nil)

	if len(grid.Rows) != 1 || len(grid.Rows[0]) != 7 {
		t.Fatalf("expected one row of seven cells")
	}
	for i, cell := range grid.Rows[0] {
		want := start.AddDate(0, 0, i)
		if !cell.Date.Equal(want) {
			t.Fatalf("cell %d: expected %v, got %v", i, want, cell.Date)
		}
		if cell.Day != want.Day() {
			t.Fatalf("week cells are never padding")
		}
	}
}

func TestSortEntries_CompositeKey(t *testing.T) {
	var schedules []*domain.Schedule
	projects := map[string]*domain.Project{}
	add := func(userNo int, lastName, projectName string, start time.Time) {
		s, p := entryFor(userNo, lastName, projectName, start, start.AddDate(0, 0, 2))
		schedules = append(schedules, s...)
		for id, proj := range p {
			projects[id] = proj
		}
	}

	add(2, "suzuki", "welding", date(2024, 6, 3))
	add(1, "sato", "press-b", date(2024, 6, 5))
	add(1, "sato", "press-a", date(2024, 6, 4))
	add(1, "sato", "press-a", date(2024, 6, 1))

	b := NewBuilder(DefaultPalette(), nil)
	entries := b.Annotate(schedules, projects)

	// sato before suzuki; within sato, press-a before press-b; within
	// press-a, earlier start first. The duplicate project name for sato's
	// two press-a schedules exercises the start-date tiebreaker.
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Project.AssignedTo.LastName+"/"+e.Project.Name+"/"+e.Schedule.StartDate.Format("01-02"))
	}
	want := []string{
		"sato/press-a/06-01",
		"sato/press-a/06-04",
		"sato/press-b/06-05",
		"suzuki/welding/06-03",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s (full order %v)", i, want[i], got[i], got)
		}
	}
}

func TestAnnotate_SkipsOrphanedSchedules(t *testing.T) {
	schedules, projects := entryFor(1, "sato", "press", date(2024, 6, 3), date(2024, 6, 5))
	schedules = append(schedules, &domain.Schedule{ID: "orphan", ProjectID: "missing"})

	b := NewBuilder(DefaultPalette(), nil)
	entries := b.Annotate(schedules, projects)
	if len(entries) != 1 {
		t.Fatalf("schedules without a project must be dropped, got %d entries", len(entries))
	}
}
