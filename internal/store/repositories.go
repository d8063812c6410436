package store

import "github.com/mnpat/go-portfolio/internal/logger"

// Repositories groups every data-access interface behind a single value so
// the service layer can depend on one constructor-injected bundle.
type Repositories struct {
	Users          UserRepository
	Contacts       ContactRepository
	Projects       ProjectRepository
	Qualifications QualificationRepository
}

// NewRepositories wires all PostgreSQL repositories to the shared
// connection pool.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(db, log),
		Contacts:       NewContactRepository(db, log),
		Projects:       NewProjectRepository(db, log),
		Qualifications: NewQualificationRepository(db, log),
	}
}
