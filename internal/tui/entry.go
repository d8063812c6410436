package tui

import (
	"time"

	"github.com/mnpat/go-portfolio/models"
)

// entryKind selects which portfolio collection a screen operates on.
// Projects and qualifications share a shape, so the list, detail and form
// screens are written once and parameterised by kind.
type entryKind int

const (
	kindProject entryKind = iota
	kindQualification
)

func (k entryKind) title() string {
	if k == kindProject {
		return "PROJECTS"
	}
	return "QUALIFICATIONS"
}

func (k entryKind) noun() string {
	if k == kindProject {
		return "project"
	}
	return "qualification"
}

// entry is the screen-side view of one project or qualification record.
type entry struct {
	ID          int64
	Title       string
	Firstname   string
	Lastname    string
	Email       string
	Completion  time.Time
	Description string
}

func entryFromProject(p models.Project) entry {
	return entry{
		ID:          p.ID,
		Title:       p.Title,
		Firstname:   p.Firstname,
		Lastname:    p.Lastname,
		Email:       p.Email,
		Completion:  p.Completion,
		Description: p.Description,
	}
}

func entryFromQualification(q models.Qualification) entry {
	return entry{
		ID:          q.ID,
		Title:       q.Title,
		Firstname:   q.Firstname,
		Lastname:    q.Lastname,
		Email:       q.Email,
		Completion:  q.Completion,
		Description: q.Description,
	}
}

func (e entry) toProject() models.Project {
	return models.Project{
		ID:          e.ID,
		Title:       e.Title,
		Firstname:   e.Firstname,
		Lastname:    e.Lastname,
		Email:       e.Email,
		Completion:  e.Completion,
		Description: e.Description,
	}
}

func (e entry) toQualification() models.Qualification {
	return models.Qualification{
		ID:          e.ID,
		Title:       e.Title,
		Firstname:   e.Firstname,
		Lastname:    e.Lastname,
		Email:       e.Email,
		Completion:  e.Completion,
		Description: e.Description,
	}
}

func (e entry) toProjectUpdate() models.ProjectUpdate {
	return models.ProjectUpdate{
		Title:       &e.Title,
		Firstname:   &e.Firstname,
		Lastname:    &e.Lastname,
		Email:       &e.Email,
		Completion:  &e.Completion,
		Description: &e.Description,
	}
}

func (e entry) toQualificationUpdate() models.QualificationUpdate {
	return models.QualificationUpdate{
		Title:       &e.Title,
		Firstname:   &e.Firstname,
		Lastname:    &e.Lastname,
		Email:       &e.Email,
		Completion:  &e.Completion,
		Description: &e.Description,
	}
}
