package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/repositories"
)

// AuthService interface defines account and login logic
type AuthService interface {
	Authenticate(ctx context.Context, form *models.LoginForm) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, username, password string, role models.Role) (*models.User, error)
	FindForSSO(ctx context.Context, candidates ...string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, logger *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		validate: models.NewValidator(),
		logger:   logger.Named("auth"),
	}
}

// Authenticate checks a username/password pair. Unknown users and wrong passwords
// both yield ErrUnauthorized.
func (s *authService) Authenticate(ctx context.Context, form *models.LoginForm) (*models.User, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("username and password are required: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(form.Username))
	if err != nil {
		if isNotFound(err) {
			s.logger.Info("Login rejected", zap.String("username", form.Username), zap.String("reason", "unknown user"))
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		s.logger.Info("Login rejected", zap.String("username", form.Username), zap.String("reason", "wrong password"))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *authService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser hashes the password and stores a new account
func (s *authService) CreateUser(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", apperrors.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", apperrors.ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("role must be admin or employee: %w", apperrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: string(hash), Role: role}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return user, nil
}

// FindForSSO returns the first existing account whose username matches one of the
// identity provider's claims, in the order given
func (s *authService) FindForSSO(ctx context.Context, candidates ...string) (*models.User, error) {
	for _, name := range candidates {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		user, err := s.userRepo.GetByUsername(ctx, name)
		if err == nil {
			return user, nil
		}
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
	}
	return nil, fmt.Errorf("no portal account for this identity: %w", apperrors.ErrUnauthorized)
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
