package models

import "time"

// Qualification is an education/certification entry shown on the public
// qualifications page. It intentionally mirrors the shape of [Project];
// the two are managed as separate collections.
type Qualification struct {
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
// associated with the Qualification model.
func (q Qualification) TableName() string {
	return "qualifications"
}

// QualificationUpdate describes a partial update of a qualification record.
// Nil fields are left untouched.
type QualificationUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Firstname   *string    `json:"firstname,omitempty"`
	Lastname    *string    `json:"lastname,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Completion  *time.Time `json:"completion,omitempty"`
	Description *string    `json:"description,omitempty"`
}
