package calendar

import "time"

// YearMonth is a month anchor used for navigation links.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PrevMonth returns the month before (year, month), rolling the year back at January.
func PrevMonth(year int, month time.Month) YearMonth {
	if month == time.January {
		return YearMonth{Year: year - 1, Month: time.December}
	}
	return YearMonth{Year: year, Month: month - 1}
}

// NextMonth returns the month after (year, month), rolling the year forward at December.
func NextMonth(year int, month time.Month) YearMonth {
	if month == time.December {
		return YearMonth{Year: year + 1, Month: time.January}
	}
	return YearMonth{Year: year, Month: month + 1}
}

// PrevWeekStart returns the start of the previous week.
func PrevWeekStart(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, -7)
}

// NextWeekStart returns the start of the next week.
func NextWeekStart(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7)
}

// MonthRange returns the first and last day of the month, inclusive.
func MonthRange(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// WeekRange returns the first and last day of the 7-day window starting at weekStart.
func WeekRange(weekStart time.Time) (first, last time.Time) {
	return weekStart, weekStart.AddDate(0, 0, 6)
}
