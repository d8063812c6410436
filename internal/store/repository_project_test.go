package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/models"
)

var projectColumns = []string{"project_id", "title", "firstname", "lastname", "email", "completion", "description", "created_at", "updated_at"}

func newTestProjectRepo(t *testing.T) (*projectRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &projectRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateProject_Success(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	completion := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	project := models.Project{
		Title:       "Portfolio site",
		Firstname:   "John",
		Lastname:    "Doe",
		Email:       "john@example.com",
		Completion:  completion,
		Description: "Personal portfolio web application",
	}

	now := time.Now()
	rows := sqlmock.
		NewRows(projectColumns).
		AddRow(1, project.Title, project.Firstname, project.Lastname, project.Email, completion, project.Description, now, now)

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(project.Title, project.Firstname, project.Lastname, project.Email, project.Completion, project.Description).
		WillReturnRows(rows)

	created, err := repo.CreateProject(context.Background(), project)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if !created.Completion.Equal(completion) {
		t.Errorf("expected completion %v, got %v", completion, created.Completion)
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	newTitle := "Renamed"
	mock.ExpectQuery("UPDATE projects").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProject(context.Background(), 99, models.ProjectUpdate{Title: &newTitle})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestListProjects_Success(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(projectColumns).
		AddRow(2, "Newer", "John", "Doe", "john@example.com", now, "B", now, now).
		AddRow(1, "Older", "John", "Doe", "john@example.com", now.AddDate(-1, 0, 0), "A", now, now)

	mock.ExpectQuery("SELECT project_id").
		WillReturnRows(rows)

	projects, err := repo.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "Newer" {
		t.Errorf("expected first project Newer, got %s", projects[0].Title)
	}
}

func TestDeleteProject_NotFound(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteProject(context.Background(), 99)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
