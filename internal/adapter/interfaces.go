// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer used by the terminal client
// to talk to the portfolio server.
//
// The primary abstraction is [ServerAdapter], which decouples the client's
// session and UI layers from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mnpat/go-portfolio/models"
)

// ServerAdapter defines transport-agnostic communication with the portfolio
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Pass an empty string to clear it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success the returned token is also
	// stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the returned
	// token is also stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Me fetches the current user record for the stored token.
	Me(ctx context.Context) (models.PublicUser, error)

	// SubmitContact leaves a visitor message. No authentication required.
	SubmitContact(ctx context.Context, contact models.Contact) (models.Contact, error)

	// ListContacts fetches all contact messages. Admin only.
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// DeleteContact removes a contact message. Admin only.
	DeleteContact(ctx context.Context, id int64) error

	// ListProjects fetches all portfolio projects.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// CreateProject adds a portfolio project. Admin only.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// UpdateProject applies a partial project update. Admin only.
	UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error)

	// DeleteProject removes a project. Admin only.
	DeleteProject(ctx context.Context, id int64) error

	// ListQualifications fetches all qualifications.
	ListQualifications(ctx context.Context) ([]models.Qualification, error)

	// CreateQualification adds a qualification. Admin only.
	CreateQualification(ctx context.Context, qualification models.Qualification) (models.Qualification, error)

	// UpdateQualification applies a partial qualification update. Admin only.
	UpdateQualification(ctx context.Context, id int64, update models.QualificationUpdate) (models.Qualification, error)

	// DeleteQualification removes a qualification. Admin only.
	DeleteQualification(ctx context.Context, id int64) error
}
