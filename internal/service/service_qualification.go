package service

import (
	"context"
	"fmt"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/internal/validators"
	"github.com/mnpat/go-portfolio/models"
)

// qualificationService is the concrete implementation of
// [QualificationService]. Listing and reading is public; mutations are for
// admins.
type qualificationService struct {
	qualificationRepository store.QualificationRepository
	validator               *validators.RequestValidator
	logger                  *logger.Logger
}

// NewQualificationService constructs a [QualificationService] wired to the
// given repository.
func NewQualificationService(qualificationRepository store.QualificationRepository, validator *validators.RequestValidator, logger *logger.Logger) QualificationService {
	return &qualificationService{
		qualificationRepository: qualificationRepository,
		validator:               validator,
		logger:                  logger,
	}
}

func (s *qualificationService) CreateQualification(ctx context.Context, qualification models.Qualification) (models.Qualification, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.ValidateStruct(qualification); err != nil {
		log.Error().Err(err).Msg("invalid qualification data provided")
		return models.Qualification{}, err
	}

	created, err := s.qualificationRepository.CreateQualification(ctx, qualification)
	if err != nil {
		log.Err(err).Msg("qualification creation ended with error")
		return models.Qualification{}, fmt.Errorf("qualification creation ended with error: %w", err)
	}

	return created, nil
}

func (s *qualificationService) GetQualification(ctx context.Context, id int64) (models.Qualification, error) {
	qualification, err := s.qualificationRepository.FindQualificationByID(ctx, id)
	if err != nil {
		return models.Qualification{}, fmt.Errorf("qualification search by id failed: %w", err)
	}

	return qualification, nil
}

func (s *qualificationService) ListQualifications(ctx context.Context) ([]models.Qualification, error) {
	qualifications, err := s.qualificationRepository.ListQualifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing qualifications failed: %w", err)
	}

	return qualifications, nil
}

func (s *qualificationService) UpdateQualification(ctx context.Context, id int64, update models.QualificationUpdate) (models.Qualification, error) {
	qualification, err := s.qualificationRepository.UpdateQualification(ctx, id, update)
	if err != nil {
		return models.Qualification{}, fmt.Errorf("qualification update failed: %w", err)
	}

	return qualification, nil
}

func (s *qualificationService) DeleteQualification(ctx context.Context, id int64) error {
	if err := s.qualificationRepository.DeleteQualification(ctx, id); err != nil {
		return fmt.Errorf("qualification deletion failed: %w", err)
	}

	return nil
}

func (s *qualificationService) DeleteAllQualifications(ctx context.Context) (int64, error) {
	count, err := s.qualificationRepository.DeleteAllQualifications(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting all qualifications failed: %w", err)
	}

	return count, nil
}
