package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/mnpat/go-portfolio/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	DeleteAllUsers(ctx context.Context) (int64, error)
}

// ContactRepository is the data-access contract for contact-form messages.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContactByID(ctx context.Context, id int64) (models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	UpdateContact(ctx context.Context, id int64, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
	DeleteAllContacts(ctx context.Context) (int64, error)
}

// ProjectRepository is the data-access contract for portfolio projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	FindProjectByID(ctx context.Context, id int64) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	DeleteAllProjects(ctx context.Context) (int64, error)
}

// QualificationRepository is the data-access contract for qualifications.
type QualificationRepository interface {
	CreateQualification(ctx context.Context, qualification models.Qualification) (models.Qualification, error)
	FindQualificationByID(ctx context.Context, id int64) (models.Qualification, error)
	ListQualifications(ctx context.Context) ([]models.Qualification, error)
	UpdateQualification(ctx context.Context, id int64, update models.QualificationUpdate) (models.Qualification, error)
	DeleteQualification(ctx context.Context, id int64) error
	DeleteAllQualifications(ctx context.Context) (int64, error)
}
