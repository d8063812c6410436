package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/internal/validators"
	"github.com/mnpat/go-portfolio/models"
)

// authService is the concrete implementation of [AuthService].
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces the `validate` tags on request payloads.
	validator *validators.RequestValidator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Expiry is absolute: tokens are never refreshed or extended.
	tokenDuration time.Duration

	// bcryptCost is the bcrypt cost factor applied at registration.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator *validators.RequestValidator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account and issues a session token.
//
// The email is lowercased before storage so lookups stay case-insensitive,
// and the password is hashed with bcrypt at the configured cost. New
// accounts always receive the "user" role; admins are provisioned
// separately.
//
// Returns the persisted user and its token, or:
//   - A *validators.ValidationError if the payload fails validation.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateStruct(req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, models.Token{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Int64("id", registeredUser.ID).Msg("token creation after registration failed")
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login verifies credentials and issues a session token.
//
// Both an unknown email and a wrong password produce the same
// [ErrInvalidCredentials]; the login flow never reveals which accounts
// exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateStruct(req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, models.Token{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("token creation after login failed")
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the user id as the "sub"
// claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to [ErrTokenIsExpiredOrInvalid] so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUser loads the current record for the given user id. Role and profile
// fields come from the database, not the token, so changes made after a
// token was issued are visible here.
func (a *authService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
