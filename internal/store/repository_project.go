package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository].
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject, project.Title, project.Firstname, project.Lastname, project.Email, project.Completion, project.Description)

	var created models.Project
	if err := scanProject(row, &created); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error creating project")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *projectRepository) FindProjectByID(ctx context.Context, id int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	var found models.Project
	row := r.db.QueryRowContext(ctx, findProjectByID, id)
	if err := scanProject(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.FindProjectByID").Msg("error scanning project row")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListProjects returns all projects ordered by completion date, newest
// first.
func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProjects)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error listing projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err = rows.Scan(&p.ID, &p.Title, &p.Firstname, &p.Lastname, &p.Email, &p.Completion, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error scanning project rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("projects").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"project_id": id}).
		Suffix("RETURNING project_id, title, firstname, lastname, email, completion, description, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	touched := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		touched = true
	}
	if update.Firstname != nil {
		builder = builder.Set("firstname", *update.Firstname)
		touched = true
	}
	if update.Lastname != nil {
		builder = builder.Set("lastname", *update.Lastname)
		touched = true
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
		touched = true
	}
	if update.Completion != nil {
		builder = builder.Set("completion", *update.Completion)
		touched = true
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		touched = true
	}
	if !touched {
		return models.Project{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error building update query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Project
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanProject(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error updating project")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProject, id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error deleting project")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) DeleteAllProjects(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAllProjects)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteAllProjects").Msg("error deleting all projects")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func scanProject(row *sql.Row, p *models.Project) error {
	return row.Scan(&p.ID, &p.Title, &p.Firstname, &p.Lastname, &p.Email, &p.Completion, &p.Description, &p.CreatedAt, &p.UpdatedAt)
}
