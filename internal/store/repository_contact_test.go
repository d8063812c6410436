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

var contactColumns = []string{"contact_id", "firstname", "lastname", "email", "phone", "message", "created_at", "updated_at"}

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &contactRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	contact := models.Contact{
		Firstname: "Jane",
		Lastname:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		Message:   "Hello!",
	}

	now := time.Now()
	rows := sqlmock.
		NewRows(contactColumns).
		AddRow(1, contact.Firstname, contact.Lastname, contact.Email, contact.Phone, contact.Message, now, now)

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(contact.Firstname, contact.Lastname, contact.Email, contact.Phone, contact.Message).
		WillReturnRows(rows)

	created, err := repo.CreateContact(context.Background(), contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
}

func TestFindContactByID_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindContactByID(context.Background(), 7)
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestListContacts_Empty(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id").
		WillReturnRows(sqlmock.NewRows(contactColumns))

	contacts, err := repo.ListContacts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contacts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(contacts) != 0 {
		t.Errorf("expected 0 contacts, got %d", len(contacts))
	}
}

func TestUpdateContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	newMessage := "Updated message"

	now := time.Now()
	rows := sqlmock.
		NewRows(contactColumns).
		AddRow(1, "Jane", "Doe", "jane@example.com", "555-0100", newMessage, now, now)

	mock.ExpectQuery("UPDATE contacts").
		WillReturnRows(rows)

	updated, err := repo.UpdateContact(context.Background(), 1, models.ContactUpdate{Message: &newMessage})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Message != newMessage {
		t.Errorf("expected message %q, got %q", newMessage, updated.Message)
	}
}

func TestUpdateContact_NoFields(t *testing.T) {
	repo, _, db := newTestContactRepo(t)
	defer db.Close()

	_, err := repo.UpdateContact(context.Background(), 1, models.ContactUpdate{})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestDeleteContact_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM contacts").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteContact(context.Background(), 99)
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestDeleteAllContacts_ReturnsCount(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM contacts").
		WillReturnResult(sqlmock.NewResult(0, 5))

	count, err := repo.DeleteAllContacts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 deleted rows, got %d", count)
	}
}
