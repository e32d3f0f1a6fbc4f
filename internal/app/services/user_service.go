package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/app/repositories"
	"github.com/duhai-alshukaili/cems/internal/importer"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
	"github.com/duhai-alshukaili/cems/internal/pkg/logger"
)

// UnknownUserDisplayName is returned when a display name is requested for a
// username that does not exist.
const UnknownUserDisplayName = "Unknown User"

// UserService handles user-related operations
type UserService struct {
	userRepo    *repositories.UserRepository
	passwords   *importer.PasswordGenerator
	emailDomain string
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, passwords *importer.PasswordGenerator, emailDomain string) *UserService {
	return &UserService{
		userRepo:    userRepo,
		passwords:   passwords,
		emailDomain: emailDomain,
	}
}

// CreateUser creates a new user. When plainPassword is empty a random one is
// issued; the issued plaintext is returned exactly once so the caller can
// hand it over.
func (s *UserService) CreateUser(ctx context.Context, user *models.User, plainPassword string) (string, error) {
	if err := s.validateUser(user); err != nil {
		return "", err
	}

	if user.Email == "" {
		user.Email = user.Username + "@" + s.emailDomain
	}

	issued := plainPassword
	if issued == "" {
		issued = s.passwords.Generate()
	}

	if err := s.userRepo.Create(ctx, user, issued); err != nil {
		return "", err
	}

	logger.Info().Str("username", user.Username).Str("userType", string(user.UserType)).Msg("User created")
	return issued, nil
}

func (s *UserService) validateUser(user *models.User) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}
	switch user.UserType {
	case models.UserTypeStudent, models.UserTypeAcademicStaff,
		models.UserTypeNonAcademicStaff, models.UserTypeSeniorManagement:
	default:
		return fmt.Errorf("%w: unknown user type %q", apperrors.ErrValidationFailed, user.UserType)
	}
	if user.Prefix != nil && !models.IsValidPrefix(*user.Prefix) {
		return fmt.Errorf("%w: unknown prefix %q", apperrors.ErrValidationFailed, *user.Prefix)
	}
	return nil
}

// GetUserByUsername retrieves a user by the institutional ID
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves a page of users matching the filter along with the
// total match count.
func (s *UserService) ListUsers(ctx context.Context, filter repositories.UserFilter, limit, offset int) ([]*models.User, int64, error) {
	users, err := s.userRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser updates a user's profile fields
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	if err := s.validateUser(user); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, user)
}

// ResetPassword issues a fresh random password for the user and returns the
// plaintext exactly once.
func (s *UserService) ResetPassword(ctx context.Context, username string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	password := s.passwords.Generate()
	if err := s.userRepo.UpdatePassword(ctx, user.ID, password); err != nil {
		return "", err
	}

	logger.Info().Str("username", username).Msg("Password reset")
	return password, nil
}

// DeleteUser deletes a user by ID
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// DisplayName resolves the readable name for a username. Unknown usernames
// resolve to UnknownUserDisplayName rather than an error so callers can embed
// the result directly.
func (s *UserService) DisplayName(ctx context.Context, username string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return UnknownUserDisplayName, nil
		}
		return "", err
	}

	return user.DisplayName(), nil
}
