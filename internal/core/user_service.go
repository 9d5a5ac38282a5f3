package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo            db.UserRepository
	bootstrapAdminEmail string
}

// NewUserService creates a new UserService instance. bootstrapAdminEmail, if
// set, names the account that receives the admin role when its profile is
// first created; every other profile starts as a customer.
func NewUserService(userRepo db.UserRepository, bootstrapAdminEmail string) UserService {
	return &userService{
		userRepo:            userRepo,
		bootstrapAdminEmail: bootstrapAdminEmail,
	}
}

// roleForEmail decides the initial role for a new profile.
func roleForEmail(email, bootstrapAdminEmail string) string {
	if bootstrapAdminEmail != "" && strings.EqualFold(email, bootstrapAdminEmail) {
		return models.RoleAdmin
	}
	return models.RoleCustomer
}

// GetOrCreate retrieves a profile by Firebase UID, creating it when missing.
// Returns the profile, whether it was created, and an error. On existing
// profiles the denormalized emailVerified flag is refreshed when the auth
// token disagrees with the stored value.
func (s *userService) GetOrCreate(ctx context.Context, userID, email, displayName string, emailVerified bool) (*models.User, bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			newUser := &models.User{
				ID:            userID, // Firebase Auth UID is the document ID
				FullName:      displayName,
				Email:         email,
				Role:          roleForEmail(email, s.bootstrapAdminEmail),
				EmailVerified: emailVerified,
			}
			if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
				return nil, false, fmt.Errorf("failed to create user (id: %s) after not found: %w", userID, createErr)
			}
			return newUser, true, nil
		}
		return nil, false, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}

	if user.EmailVerified != emailVerified {
		user.EmailVerified = emailVerified
		if updateErr := s.userRepo.Update(ctx, user); updateErr != nil {
			return nil, false, fmt.Errorf("failed to sync emailVerified for user '%s': %w", userID, updateErr)
		}
	}
	return user, false, nil
}

// GetByID retrieves a user profile by Firebase UID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}
	return user, nil
}

// List returns every user profile.
func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// WatchUsers streams full profile-list snapshots.
func (s *userService) WatchUsers(ctx context.Context) <-chan db.Snapshot[*models.User] {
	return s.userRepo.Watch(ctx)
}
