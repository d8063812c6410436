package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/models"
)

// userService is the concrete implementation of [UserService]. Account
// management operations beyond register/login live here; the handlers
// expose them to admins only.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial update. An updated email is lowercased to
// match the storage convention.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Email != nil {
		lowered := strings.ToLower(*update.Email)
		update.Email = &lowered
	}

	user, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

func (s *userService) DeleteAllUsers(ctx context.Context) (int64, error) {
	count, err := s.userRepository.DeleteAllUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting all users failed: %w", err)
	}

	return count, nil
}
