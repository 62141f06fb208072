package handler

import (
	"github.com/yamato-seiki/schedule-api/internal/core/calendar"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

type calendarEntryResponse struct {
	ScheduleID    string `json:"schedule_id"`
	ProjectID     string `json:"project_id"`
	ProjectName   string `json:"project_name"`
	FieldName     string `json:"field_name"`
	Status        string `json:"status"`
	AssigneeName  string `json:"assignee_name"`
	AssignedColor string `json:"assigned_bg_color"`
	TextColor     string `json:"assigned_text_color"`
}

type calendarCellResponse struct {
	Date       string                  `json:"date"`
	Day        int                     `json:"day"`
	IsSaturday bool                    `json:"is_saturday"`
	IsSunday   bool                    `json:"is_sunday"`
	IsHoliday  bool                    `json:"is_holiday"`
	Entries    []calendarEntryResponse `json:"entries"`
}

type yearMonthResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type filterOptionsResponse struct {
	Users    []userOption    `json:"users"`
	Projects []projectOption `json:"projects"`
}

type projectOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type monthViewResponse struct {
	Scope     string                   `json:"scope"`
	Year      int                      `json:"year"`
	Month     int                      `json:"month"`
	MonthName string                   `json:"month_name"`
	Today     string                   `json:"today"`
	Prev      yearMonthResponse        `json:"prev"`
	Next      yearMonthResponse        `json:"next"`
	Rows      [][]calendarCellResponse `json:"rows"`
	Options   filterOptionsResponse    `json:"options"`
}

type weekViewResponse struct {
	Scope     string                   `json:"scope"`
	WeekStart string                   `json:"week_start"`
	WeekEnd   string                   `json:"week_end"`
	PrevStart string                   `json:"prev_start"`
	NextStart string                   `json:"next_start"`
	Year      int                      `json:"year"`
	Month     int                      `json:"month"`
	MonthName string                   `json:"month_name"`
	PrevMonth yearMonthResponse        `json:"prev_month"`
	NextMonth yearMonthResponse        `json:"next_month"`
	Today     string                   `json:"today"`
	Rows      [][]calendarCellResponse `json:"rows"`
	Options   filterOptionsResponse    `json:"options"`
}

func toCellRows(g calendar.Grid) [][]calendarCellResponse {
	rows := make([][]calendarCellResponse, 0, len(g.Rows))
	for _, row := range g.Rows {
		cells := make([]calendarCellResponse, 0, len(row))
		for _, cell := range row {
			cells = append(cells, toCellResponse(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}

func toCellResponse(cell calendar.DayCell) calendarCellResponse {
	entries := make([]calendarEntryResponse, 0, len(cell.Entries))
	for _, e := range cell.Entries {
		entries = append(entries, calendarEntryResponse{
			ScheduleID:    e.Schedule.ID,
			ProjectID:     e.Project.ID,
			ProjectName:   e.Project.Name,
			FieldName:     e.Schedule.FieldName,
			Status:        string(e.Schedule.Status),
			AssigneeName:  refDisplayName(e.Project.AssignedTo),
			AssignedColor: e.Color.Background,
			TextColor:     e.Color.Text,
		})
	}
	return calendarCellResponse{
		Date:       cell.Date.Format(isoDate),
		Day:        cell.Day,
		IsSaturday: cell.IsSaturday,
		IsSunday:   cell.IsSunday,
		IsHoliday:  cell.IsHoliday,
		Entries:    entries,
	}
}

func toFilterOptions(o ports.FilterOptions) filterOptionsResponse {
	resp := filterOptionsResponse{
		Users:    toUserOptions(o.Users),
		Projects: make([]projectOption, 0, len(o.Projects)),
	}
	for _, p := range o.Projects {
		resp.Projects = append(resp.Projects, projectOption{ID: p.ID, Name: p.Name})
	}
	return resp
}

func toYearMonth(ym calendar.YearMonth) yearMonthResponse {
	return yearMonthResponse{Year: ym.Year, Month: int(ym.Month)}
}
