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

// qualificationRepository is the PostgreSQL-backed implementation of
// [QualificationRepository].
type qualificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQualificationRepository constructs a [QualificationRepository] backed
// by the provided database connection and logger.
func NewQualificationRepository(db *DB, logger *logger.Logger) QualificationRepository {
	logger.Debug().Msg("creating qualification repository")
	return &qualificationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *qualificationRepository) CreateQualification(ctx context.Context, qualification models.Qualification) (models.Qualification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createQualification, qualification.Title, qualification.Firstname, qualification.Lastname, qualification.Email, qualification.Completion, qualification.Description)

	var created models.Qualification
	if err := scanQualification(row, &created); err != nil {
		log.Err(err).Str("func", "*qualificationRepository.CreateQualification").Msg("error creating qualification")
		return models.Qualification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *qualificationRepository) FindQualificationByID(ctx context.Context, id int64) (models.Qualification, error) {
	log := logger.FromContext(ctx)

	var found models.Qualification
	row := r.db.QueryRowContext(ctx, findQualificationByID, id)
	if err := scanQualification(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Qualification{}, ErrQualificationNotFound
		}

		log.Err(err).Str("func", "*qualificationRepository.FindQualificationByID").Msg("error scanning qualification row")
		return models.Qualification{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListQualifications returns all qualifications ordered by completion date,
// newest first.
func (r *qualificationRepository) ListQualifications(ctx context.Context) ([]models.Qualification, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listQualifications)
	if err != nil {
		log.Err(err).Str("func", "*qualificationRepository.ListQualifications").Msg("error listing qualifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	qualifications := make([]models.Qualification, 0)
	for rows.Next() {
		var q models.Qualification
		if err = rows.Scan(&q.ID, &q.Title, &q.Firstname, &q.Lastname, &q.Email, &q.Completion, &q.Description, &q.CreatedAt, &q.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*qualificationRepository.ListQualifications").Msg("error scanning qualification rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		qualifications = append(qualifications, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return qualifications, nil
}

func (r *qualificationRepository) UpdateQualification(ctx context.Context, id int64, update models.QualificationUpdate) (models.Qualification, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("qualifications").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"qualification_id": id}).
		Suffix("RETURNING qualification_id, title, firstname, lastname, email, completion, description, created_at, updated_at").
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
		return models.Qualification{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*qualificationRepository.UpdateQualification").Msg("error building update query")
		return models.Qualification{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Qualification
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanQualification(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Qualification{}, ErrQualificationNotFound
		}

		log.Err(err).Str("func", "*qualificationRepository.UpdateQualification").Msg("error updating qualification")
		return models.Qualification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *qualificationRepository) DeleteQualification(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteQualification, id)
	if err != nil {
		log.Err(err).Str("func", "*qualificationRepository.DeleteQualification").Msg("error deleting qualification")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrQualificationNotFound
	}

	return nil
}

func (r *qualificationRepository) DeleteAllQualifications(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAllQualifications)
	if err != nil {
		log.Err(err).Str("func", "*qualificationRepository.DeleteAllQualifications").Msg("error deleting all qualifications")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func scanQualification(row *sql.Row, q *models.Qualification) error {
	return row.Scan(&q.ID, &q.Title, &q.Firstname, &q.Lastname, &q.Email, &q.Completion, &q.Description, &q.CreatedAt, &q.UpdatedAt)
}
