package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /v1/projects.
//
// @Summary      List projects visible to the caller
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "active (default), completed or all"
// @Param        assignee  query     string  false  "all (default) or me (managers only)"
// @Param        sort      query     string  false  "name, manufacturing_number, due_date, created_at, completed_at, assigned_to"
// @Success      200       {array}   projectSummaryResponse
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.List(c.Request().Context(), viewer, ports.ListProjectsInput{
		Status:   c.QueryParam("status"),
		Assignee: c.QueryParam("assignee"),
		SortBy:   c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}

	resp := make([]projectSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, toProjectSummaryResponse(s))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project with its schedules
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectDetailResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}

	schedules := make([]scheduleResponse, 0, len(detail.Schedules))
	for _, s := range detail.Schedules {
		schedules = append(schedules, toScheduleResponse(s))
	}
	return c.JSON(http.StatusOK, projectDetailResponse{
		Project:                toProjectResponse(detail.Project),
		Schedules:              schedules,
		IncompleteCount:        detail.IncompleteCount,
		HasIncompleteSchedules: detail.IncompleteCount > 0,
	})
}

// Create handles POST /v1/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	name, number, description, assigneeID, due := toProjectInput(req)
	project, err := h.service.Create(c.Request().Context(), viewer, ports.CreateProjectInput{
		Name:                name,
		ManufacturingNumber: number,
		DueDate:             due,
		Description:         description,
		AssignedToID:        assigneeID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// Update handles PUT /v1/projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project details"
// @Success      200   {object}  projectResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	name, number, description, assigneeID, due := toProjectInput(req)
	project, err := h.service.Update(c.Request().Context(), viewer, c.Param("id"), ports.UpdateProjectInput{
		Name:                name,
		ManufacturingNumber: number,
		DueDate:             due,
		Description:         description,
		AssignedToID:        assigneeID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// Delete handles DELETE /v1/projects/:id.
//
// @Summary      Delete a schedule-less project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleCompletion handles POST /v1/projects/:id/toggle-completion.
//
// @Summary      Complete or reopen a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/projects/{id}/toggle-completion [post]
func (h *ProjectHandler) ToggleCompletion(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	project, err := h.service.ToggleCompletion(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}
