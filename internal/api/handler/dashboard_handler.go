package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// DashboardHandler serves the landing-page overview.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type dashboardEntryResponse struct {
	ScheduleID   string `json:"schedule_id"`
	ProjectID    string `json:"project_id"`
	ProjectName  string `json:"project_name"`
	FieldName    string `json:"field_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	AssigneeName string `json:"assignee_name"`
}

type dashboardResponse struct {
	Today    []dashboardEntryResponse `json:"today"`
	Recent   []dashboardEntryResponse `json:"recent"`
	Projects []projectResponse        `json:"projects"`
}

// Overview handles GET /v1/dashboard.
//
// @Summary      Landing-page overview
// @Description  Today's schedules, schedules within a week of today and the
// @Description  five newest projects visible to the caller.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	result, err := h.service.Overview(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	resp := dashboardResponse{
		Today:    toDashboardEntries(result.Today),
		Recent:   toDashboardEntries(result.Recent),
		Projects: make([]projectResponse, 0, len(result.Projects)),
	}
	for _, p := range result.Projects {
		resp.Projects = append(resp.Projects, toProjectResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

func toDashboardEntries(entries []ports.DashboardEntry) []dashboardEntryResponse {
	resp := make([]dashboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dashboardEntryResponse{
			ScheduleID:   e.Schedule.ID,
			ProjectID:    e.Project.ID,
			ProjectName:  e.Project.Name,
			FieldName:    e.Schedule.FieldName,
			StartDate:    e.Schedule.StartDate.Format(isoDate),
			EndDate:      e.Schedule.EndDate.Format(isoDate),
			Status:       string(e.Schedule.Status),
			AssigneeName: refDisplayName(e.Project.AssignedTo),
		})
	}
	return resp
}
