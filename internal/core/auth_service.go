package core

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// authService implements AuthService on top of the Firebase Auth admin
// client. Password sign-in itself stays on the auth service (clients
// exchange credentials for ID tokens directly); this service covers the
// account operations the backend owns.
type authService struct {
	authAdmin           AuthAdmin
	userRepo            db.UserRepository
	bootstrapAdminEmail string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(authAdmin AuthAdmin, userRepo db.UserRepository, bootstrapAdminEmail string) AuthService {
	return &authService{
		authAdmin:           authAdmin,
		userRepo:            userRepo,
		bootstrapAdminEmail: bootstrapAdminEmail,
	}
}

// SignUp creates the auth account with the display name, writes the profile
// document and returns the email-verification link. The account starts
// unverified; sign-in with an unverified account is rejected at token
// verification time.
func (s *authService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, string, error) {
	params := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.FullName).
		EmailVerified(false)

	record, err := s.authAdmin.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrEmailExists, req.Email)
		}
		return nil, "", fmt.Errorf("failed to create auth user: %w", err)
	}

	user := &models.User{
		ID:            record.UID,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Email:         req.Email,
		Role:          roleForEmail(req.Email, s.bootstrapAdminEmail),
		EmailVerified: false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("auth user %s created but profile write failed: %w", record.UID, err)
	}

	link, err := s.authAdmin.EmailVerificationLink(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate verification link for %s: %w", req.Email, err)
	}
	return user, link, nil
}

// PasswordResetLink generates a password-reset link for the email.
func (s *authService) PasswordResetLink(ctx context.Context, email string) (string, error) {
	link, err := s.authAdmin.PasswordResetLink(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to generate password reset link for %s: %w", email, err)
	}
	return link, nil
}
