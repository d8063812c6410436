package models

import "time"

// Role is the authorization role assigned to a user account.
type Role string

const (
	// RoleUser is the default role granted at registration.
	RoleUser Role = "user"

	// RoleAdmin marks accounts that may manage portfolio content.
	// It is assigned only by a provisioning step, never at registration.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Email is the unique login key. Stored lowercased so that uniqueness
	// checks are case-insensitive.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized and never leaves the server process.
	PasswordHash string `json:"-"`

	// Role is the authorization role of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns the projection of the user that is safe to return to
// clients: identity and profile attributes without the password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the client-facing projection of a [User].
// It is the shape persisted by the client session store and returned by
// every auth and user endpoint.
type PublicUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the projection carries the admin role.
func (u PublicUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate describes a partial update of a user record.
// Nil fields are left untouched. There is deliberately no password field:
// raw passwords cannot be set through the generic update route.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *Role   `json:"role,omitempty"`
}
