package domain

import (
	"strings"
	"time"
)

// User models an account in the scheduling system. UserNo is a small
// sequential number allocated at registration; it drives the deterministic
// colour assignment on calendar entries.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	UserNo       int       `json:"user_no" bson:"user_no"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	FirstName    string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Department   string    `json:"department,omitempty" bson:"department,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	IsManager    bool      `json:"is_manager" bson:"is_manager"`
	IsViewer     bool      `json:"is_viewer" bson:"is_viewer"`
	IsSuperuser  bool      `json:"is_superuser" bson:"is_superuser"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// DisplayName returns "LastName FirstName" when either is set, otherwise the username.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.LastName + " " + u.FirstName)
	if name != "" {
		return name
	}
	return u.Username
}

// Viewer is the capability projection of a user computed once per request
// from the auth claims. All visibility and mutation checks go through it
// instead of re-reading role flags ad hoc.
type Viewer struct {
	ID          string
	UserNo      int
	Username    string
	IsManager   bool
	IsViewer    bool
	IsSuperuser bool
}

// ViewerFor builds a Viewer from a stored user.
func ViewerFor(u *User) Viewer {
	return Viewer{
		ID:          u.ID,
		UserNo:      u.UserNo,
		Username:    u.Username,
		IsManager:   u.IsManager,
		IsViewer:    u.IsViewer,
		IsSuperuser: u.IsSuperuser,
	}
}

// SeesAll reports whether the viewer sees every project regardless of
// ownership. Managers and superusers see all and may edit; viewers see all
// read-only.
func (v Viewer) SeesAll() bool {
	return v.IsManager || v.IsSuperuser || v.IsViewer
}

// CanManage reports manager-level mutation rights.
func (v Viewer) CanManage() bool {
	return v.IsManager || v.IsSuperuser
}

// CanCreate reports whether the viewer may create projects and schedules.
// Viewer accounts are read-only.
func (v Viewer) CanCreate() bool {
	return !v.IsViewer
}

// CanSeeProject reports whether the project is visible to the viewer.
func (v Viewer) CanSeeProject(p *Project) bool {
	if v.SeesAll() {
		return true
	}
	return p.CreatedByID == v.ID || p.AssignedTo.ID == v.ID
}

// CanEditProject reports whether the viewer may update or delete the project.
// Only the creator, managers and superusers may; viewer accounts never may.
func (v Viewer) CanEditProject(p *Project) bool {
	if v.IsViewer {
		return false
	}
	return v.CanManage() || p.CreatedByID == v.ID
}

// CanToggleProject reports whether the viewer may flip the project's
// completion flag. The assignee may in addition to the creator and managers.
func (v Viewer) CanToggleProject(p *Project) bool {
	return v.CanManage() || p.CreatedByID == v.ID || p.AssignedTo.ID == v.ID
}

// CanEditSchedules reports whether the viewer may create, update, delete or
// complete schedules under the project.
func (v Viewer) CanEditSchedules(p *Project) bool {
	if v.IsViewer {
		return false
	}
	return v.CanToggleProject(p)
}
