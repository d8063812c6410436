package models

import "time"

// Project is a portfolio project entry shown on the public projects page.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Firstname   string    `json:"firstname" validate:"required"`
	Lastname    string    `json:"lastname" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Completion  time.Time `json:"completion" validate:"required"`
	Description string    `json:"description" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectUpdate describes a partial update of a project record.
// Nil fields are left untouched.
type ProjectUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Firstname   *string    `json:"firstname,omitempty"`
	Lastname    *string    `json:"lastname,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Completion  *time.Time `json:"completion,omitempty"`
	Description *string    `json:"description,omitempty"`
}
