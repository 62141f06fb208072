package calendar

import (
	"testing"
	"time"
)

func TestPrevMonth_JanuaryRollsBack(t *testing.T) {
	got := PrevMonth(2024, time.January)
	if got.Year != 2023 || got.Month != time.December {
		t.Fatalf("expected 2023-12, got %d-%d", got.Year, got.Month)
	}
}

func TestNextMonth_DecemberRollsForward(t *testing.T) {
	got := NextMonth(2024, time.December)
	if got.Year != 2025 || got.Month != time.January {
		t.Fatalf("expected 2025-01, got %d-%d", got.Year, got.Month)
	}
}

func TestMonthNavigation_MidYear(t *testing.T) {
	if got := PrevMonth(2024, time.June); got != (YearMonth{2024, time.May}) {
		t.Fatalf("expected 2024-05, got %+v", got)
	}
	if got := NextMonth(2024, time.June); got != (YearMonth{2024, time.July}) {
		t.Fatalf("expected 2024-07, got %+v", got)
	}
}

func TestWeekNavigation(t *testing.T) {
	start := date(2024, 6, 9)
	if got := PrevWeekStart(start); !got.Equal(date(2024, 6, 2)) {
		t.Fatalf("expected 2024-06-02, got %v", got)
	}
	if got := NextWeekStart(start); !got.Equal(date(2024, 6, 16)) {
		t.Fatalf("expected 2024-06-16, got %v", got)
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	if !first.Equal(date(2024, 2, 1)) || !last.Equal(date(2024, 2, 29)) {
		t.Fatalf("leap February: got %v..%v", first, last)
	}
}

func TestWeekRange(t *testing.T) {
	first, last := WeekRange(date(2024, 6, 9))
	if !first.Equal(date(2024, 6, 9)) || !last.Equal(date(2024, 6, 15)) {
		t.Fatalf("got %v..%v", first, last)
	}
}
