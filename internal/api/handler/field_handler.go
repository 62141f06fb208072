package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// FieldHandler handles HTTP requests for work-field management.
type FieldHandler struct {
	service ports.FieldService
}

func NewFieldHandler(service ports.FieldService) *FieldHandler {
	return &FieldHandler{service: service}
}

type fieldRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type fieldResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Reference string    `json:"reference,omitempty"`
}

func toFieldResponse(f *domain.Field) fieldResponse {
	return fieldResponse{ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt}
}

// List handles GET /v1/fields.
//
// @Summary      List work fields
// @Tags         fields
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  fieldResponse
// @Router       /v1/fields [get]
func (h *FieldHandler) List(c echo.Context) error {
	fields, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]fieldResponse, 0, len(fields))
	for _, f := range fields {
		resp = append(resp, toFieldResponse(f))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/fields.
//
// @Summary      Create a work field
// @Tags         fields
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      fieldRequest  true  "Field name"
// @Success      201   {object}  fieldResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/fields [post]
func (h *FieldHandler) Create(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	var req fieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), viewer, req.Name)
	if err != nil {
		return err
	}

	resp := toFieldResponse(result.Field)
	resp.Reference = result.Reference
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /v1/fields/:id.
//
// @Summary      Rename a work field
// @Tags         fields
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Field id"
// @Param        body  body      fieldRequest  true  "Field name"
// @Success      200   {object}  fieldResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/fields/{id} [put]
func (h *FieldHandler) Update(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	var req fieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	field, err := h.service.Update(c.Request().Context(), viewer, c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFieldResponse(field))
}

// Delete handles DELETE /v1/fields/:id.
//
// @Summary      Delete an unused work field
// @Tags         fields
// @Security     BearerAuth
// @Param        id  path  string  true  "Field id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/fields/{id} [delete]
func (h *FieldHandler) Delete(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
