package domain

import "time"

// UserRef is a denormalised snapshot of the user a project points at.
// Enough to render, sort and colour calendar rows without an extra lookup.
type UserRef struct {
	ID        string `json:"id" bson:"id"`
	UserNo    int    `json:"user_no" bson:"user_no"`
	Username  string `json:"username" bson:"username"`
	FirstName string `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty" bson:"last_name,omitempty"`
}

// RefFor builds a UserRef snapshot from a user.
func RefFor(u *User) UserRef {
	return UserRef{
		ID:        u.ID,
		UserNo:    u.UserNo,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Project is a manufacturing job tracked for completion.
type Project struct {
	ID                  string     `json:"id" bson:"_id,omitempty"`
	Name                string     `json:"name" bson:"name"`
	ManufacturingNumber string     `json:"manufacturing_number" bson:"manufacturing_number"`
	DueDate             *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Description         string     `json:"description,omitempty" bson:"description,omitempty"`
	IsCompleted         bool       `json:"is_completed" bson:"is_completed"`
	CompletedAt         *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedByID         string     `json:"created_by_id" bson:"created_by_id"`
	CreatedByName       string     `json:"created_by_name" bson:"created_by_name"`
	AssignedTo          UserRef    `json:"assigned_to" bson:"assigned_to"`
	CreatedAt           time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" bson:"updated_at"`
}

// ToggleCompletion flips the completion flag. Completing stamps CompletedAt;
// reopening clears it. The incomplete-schedule gate is enforced by the
// service before calling this.
func (p *Project) ToggleCompletion(now time.Time) {
	if p.IsCompleted {
		p.IsCompleted = false
		p.CompletedAt = nil
		return
	}
	p.IsCompleted = true
	t := now
	p.CompletedAt = &t
}

// Field is a work discipline (wiring, drafting, ...) schedules are tagged with.
type Field struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	CreatedByID string    `json:"created_by_id" bson:"created_by_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
