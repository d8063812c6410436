package service

import (
	"context"

	"github.com/mnpat/go-portfolio/models"
)

// AuthService handles registration, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	// Register creates a new user account and issues a session token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUser loads the current user record for the given id.
	GetUser(ctx context.Context, id int64) (models.User, error)
}

// UserService manages user accounts beyond the auth flows.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	DeleteAllUsers(ctx context.Context) (int64, error)
}

// ContactService manages contact-form messages.
type ContactService interface {
	SubmitContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContact(ctx context.Context, id int64) (models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	UpdateContact(ctx context.Context, id int64, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
	DeleteAllContacts(ctx context.Context) (int64, error)
}

// ProjectService manages portfolio projects.
type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	DeleteAllProjects(ctx context.Context) (int64, error)
}

// QualificationService manages qualifications.
type QualificationService interface {
	CreateQualification(ctx context.Context, qualification models.Qualification) (models.Qualification, error)
	GetQualification(ctx context.Context, id int64) (models.Qualification, error)
	ListQualifications(ctx context.Context) ([]models.Qualification, error)
	UpdateQualification(ctx context.Context, id int64, update models.QualificationUpdate) (models.Qualification, error)
	DeleteQualification(ctx context.Context, id int64) error
	DeleteAllQualifications(ctx context.Context) (int64, error)
}
