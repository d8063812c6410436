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

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository].
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContact, contact.Firstname, contact.Lastname, contact.Email, contact.Phone, contact.Message)

	var created models.Contact
	if err := scanContact(row, &created); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error creating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *contactRepository) FindContactByID(ctx context.Context, id int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var found models.Contact
	row := r.db.QueryRowContext(ctx, findContactByID, id)
	if err := scanContact(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.FindContactByID").Msg("error scanning contact row")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListContacts returns all contact messages, newest first.
func (r *contactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listContacts)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error listing contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err = rows.Scan(&c.ID, &c.Firstname, &c.Lastname, &c.Email, &c.Phone, &c.Message, &c.CreatedAt, &c.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error scanning contact rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (r *contactRepository) UpdateContact(ctx context.Context, id int64, update models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("contacts").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"contact_id": id}).
		Suffix("RETURNING contact_id, firstname, lastname, email, phone, message, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	touched := false
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
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
		touched = true
	}
	if update.Message != nil {
		builder = builder.Set("message", *update.Message)
		touched = true
	}
	if !touched {
		return models.Contact{}, ErrNoFieldsToUpdate
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error building update query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Contact
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanContact(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error updating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *contactRepository) DeleteContact(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, id)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error deleting contact")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) DeleteAllContacts(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAllContacts)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteAllContacts").Msg("error deleting all contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func scanContact(row *sql.Row, c *models.Contact) error {
	return row.Scan(&c.ID, &c.Firstname, &c.Lastname, &c.Email, &c.Phone, &c.Message, &c.CreatedAt, &c.UpdatedAt)
}
