package service

import (
	"context"
	"fmt"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/internal/validators"
	"github.com/mnpat/go-portfolio/models"
)

// contactService is the concrete implementation of [ContactService].
// Submission is open to visitors; reading and managing messages is for
// admins.
type contactService struct {
	contactRepository store.ContactRepository
	validator         *validators.RequestValidator
	logger            *logger.Logger
}

// NewContactService constructs a [ContactService] wired to the given
// repository.
func NewContactService(contactRepository store.ContactRepository, validator *validators.RequestValidator, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validator,
		logger:            logger,
	}
}

// SubmitContact validates and stores a visitor message.
func (s *contactService) SubmitContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.ValidateStruct(contact); err != nil {
		log.Error().Err(err).Msg("invalid contact data provided")
		return models.Contact{}, err
	}

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return created, nil
}

func (s *contactService) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	contact, err := s.contactRepository.FindContactByID(ctx, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact search by id failed: %w", err)
	}

	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepository.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contacts failed: %w", err)
	}

	return contacts, nil
}

func (s *contactService) UpdateContact(ctx context.Context, id int64, update models.ContactUpdate) (models.Contact, error) {
	contact, err := s.contactRepository.UpdateContact(ctx, id, update)
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact update failed: %w", err)
	}

	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id int64) error {
	if err := s.contactRepository.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("contact deletion failed: %w", err)
	}

	return nil
}

func (s *contactService) DeleteAllContacts(ctx context.Context) (int64, error) {
	count, err := s.contactRepository.DeleteAllContacts(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting all contacts failed: %w", err)
	}

	return count, nil
}
