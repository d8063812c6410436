package models

import "time"

// Contact is a message submitted through the public contact form.
// Unlike projects and qualifications it can be created without
// authentication; management (list/update/delete) is restricted.
type Contact struct {
	ID        int64     `json:"id"`
	Firstname string    `json:"firstname" validate:"required"`
	Lastname  string    `json:"lastname" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactUpdate describes a partial update of a contact record.
// Nil fields are left untouched.
type ContactUpdate struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Message   *string `json:"message,omitempty"`
}
