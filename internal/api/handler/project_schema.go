package handler

import (
	"time"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

const isoDate = "2006-01-02"

type projectRequest struct {
	Name                string `json:"name" validate:"required,max=200"`
	ManufacturingNumber string `json:"manufacturing_number" validate:"required,max=100"`
	DueDate             string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description         string `json:"description,omitempty"`
	AssignedToID        string `json:"assigned_to_id,omitempty"`
}

type assigneeResponse struct {
	ID          string `json:"id"`
	UserNo      int    `json:"user_no"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type projectResponse struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	ManufacturingNumber string           `json:"manufacturing_number"`
	DueDate             string           `json:"due_date,omitempty"`
	Description         string           `json:"description,omitempty"`
	IsCompleted         bool             `json:"is_completed"`
	CompletedAt         *time.Time       `json:"completed_at,omitempty"`
	CreatedByID         string           `json:"created_by_id"`
	CreatedByName       string           `json:"created_by_name"`
	AssignedTo          assigneeResponse `json:"assigned_to"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

type projectSummaryResponse struct {
	projectResponse
	AssignedBgColor   string `json:"assigned_bg_color"`
	AssignedTextColor string `json:"assigned_text_color"`
	CanBeDeleted      bool   `json:"can_be_deleted"`
}

type projectDetailResponse struct {
	Project                projectResponse    `json:"project"`
	Schedules              []scheduleResponse `json:"schedules"`
	IncompleteCount        int                `json:"incomplete_count"`
	HasIncompleteSchedules bool               `json:"has_incomplete_schedules"`
}

func toProjectInput(req projectRequest) (name, number, description, assigneeID string, due *time.Time) {
	if req.DueDate != "" {
		// Validated by the datetime tag, parse cannot fail here.
		d, err := time.Parse(isoDate, req.DueDate)
		if err == nil {
			due = &d
		}
	}
	return req.Name, req.ManufacturingNumber, req.Description, req.AssignedToID, due
}

func toProjectResponse(p *domain.Project) projectResponse {
	resp := projectResponse{
		ID:                  p.ID,
		Name:                p.Name,
		ManufacturingNumber: p.ManufacturingNumber,
		Description:         p.Description,
		IsCompleted:         p.IsCompleted,
		CompletedAt:         p.CompletedAt,
		CreatedByID:         p.CreatedByID,
		CreatedByName:       p.CreatedByName,
		AssignedTo: assigneeResponse{
			ID:          p.AssignedTo.ID,
			UserNo:      p.AssignedTo.UserNo,
			Username:    p.AssignedTo.Username,
			DisplayName: refDisplayName(p.AssignedTo),
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.DueDate != nil {
		resp.DueDate = p.DueDate.Format(isoDate)
	}
	return resp
}

func toProjectSummaryResponse(s ports.ProjectSummary) projectSummaryResponse {
	return projectSummaryResponse{
		projectResponse:   toProjectResponse(s.Project),
		AssignedBgColor:   s.Color.Background,
		AssignedTextColor: s.Color.Text,
		CanBeDeleted:      s.CanBeDeleted,
	}
}

func refDisplayName(ref domain.UserRef) string {
	name := ref.LastName
	if ref.FirstName != "" {
		if name != "" {
			name += " "
		}
		name += ref.FirstName
	}
	if name == "" {
		return ref.Username
	}
	return name
}
