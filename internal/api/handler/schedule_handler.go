package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// ScheduleHandler handles HTTP requests for schedule operations.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

type createScheduleRequest struct {
	ProjectID   string `json:"project_id" validate:"required"`
	FieldID     string `json:"field_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description,omitempty"`
}

type updateScheduleRequest struct {
	FieldID     string `json:"field_id,omitempty"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description,omitempty"`
}

type scheduleResponse struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	FieldID      string     `json:"field_id"`
	FieldName    string     `json:"field_name"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	DurationDays int        `json:"duration_days"`
	Status       string     `json:"status"`
	Description  string     `json:"description,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

type scheduleDetailResponse struct {
	Schedule scheduleResponse `json:"schedule"`
	Project  projectResponse  `json:"project"`
}

func toScheduleResponse(s *domain.Schedule) scheduleResponse {
	return scheduleResponse{
		ID:           s.ID,
		ProjectID:    s.ProjectID,
		FieldID:      s.FieldID,
		FieldName:    s.FieldName,
		StartDate:    domain.DateOf(s.StartDate).Format(isoDate),
		EndDate:      domain.DateOf(s.EndDate).Format(isoDate),
		DurationDays: s.DurationDays(),
		Status:       string(s.Status),
		Description:  s.Description,
		CompletedAt:  s.CompletedAt,
	}
}

// Create handles POST /v1/schedules.
//
// @Summary      Create a schedule under a project
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createScheduleRequest  true  "Schedule details"
// @Success      201   {object}  scheduleResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/schedules [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	var req createScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	// Validated by the datetime tag, parse cannot fail here.
	start, _ := time.Parse(isoDate, req.StartDate)
	end, _ := time.Parse(isoDate, req.EndDate)

	schedule, err := h.service.Create(c.Request().Context(), viewer, ports.CreateScheduleInput{
		ProjectID:   req.ProjectID,
		FieldID:     req.FieldID,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toScheduleResponse(schedule))
}

// Get handles GET /v1/schedules/:id.
//
// @Summary      Get a schedule with its project
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Schedule id"
// @Success      200  {object}  scheduleDetailResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/schedules/{id} [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scheduleDetailResponse{
		Schedule: toScheduleResponse(detail.Schedule),
		Project:  toProjectResponse(detail.Project),
	})
}

// Update handles PUT /v1/schedules/:id.
//
// @Summary      Update a schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Schedule id"
// @Param        body  body      updateScheduleRequest  true  "Schedule details"
// @Success      200   {object}  scheduleResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/schedules/{id} [put]
func (h *ScheduleHandler) Update(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	var req updateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	// Validated by the datetime tag, parse cannot fail here.
	start, _ := time.Parse(isoDate, req.StartDate)
	end, _ := time.Parse(isoDate, req.EndDate)

	schedule, err := h.service.Update(c.Request().Context(), viewer, c.Param("id"), ports.UpdateScheduleInput{
		FieldID:     req.FieldID,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toScheduleResponse(schedule))
}

// Delete handles DELETE /v1/schedules/:id.
//
// @Summary      Delete a schedule
// @Tags         schedules
// @Security     BearerAuth
// @Param        id  path  string  true  "Schedule id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleCompletion handles POST /v1/schedules/:id/toggle-completion.
//
// @Summary      Complete or reopen a schedule
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Schedule id"
// @Success      200  {object}  scheduleResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/schedules/{id}/toggle-completion [post]
func (h *ScheduleHandler) ToggleCompletion(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	schedule, err := h.service.ToggleCompletion(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toScheduleResponse(schedule))
}
