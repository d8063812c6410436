package service

import (
	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/internal/validators"
)

// Services bundles every domain service behind a single value injected
// into the HTTP handlers.
type Services struct {
	AuthService          AuthService
	UserService          UserService
	ContactService       ContactService
	ProjectService       ProjectService
	QualificationService QualificationService
}

// NewServices wires all services to the given repositories and
// configuration.
func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:          NewAuthService(repos.Users, validator, cfg.Auth, logger),
		UserService:          NewUserService(repos.Users, logger),
		ContactService:       NewContactService(repos.Contacts, validator, logger),
		ProjectService:       NewProjectService(repos.Projects, validator, logger),
		QualificationService: NewQualificationService(repos.Qualifications, validator, logger),
	}
}
