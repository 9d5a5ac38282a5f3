package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/models"
)

// AuthHandler handles account creation, password reset links and profile
// initialization. Sign-in itself happens directly against the auth service
// on the client; the backend only verifies the resulting ID tokens.
type AuthHandler struct {
	authService core.AuthService
	userService core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as core.AuthService, us core.UserService) *AuthHandler {
	return &AuthHandler{authService: as, userService: us}
}

// SignUp handles POST /auth/signup. It creates the auth account and profile
// document and returns the email-verification link for the new account.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if !bindJSONOrFail(c, &req) {
		return
	}

	user, link, err := h.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SignUpResponse{User: user, VerificationLink: link})
}

// PasswordReset handles POST /auth/password-reset, returning a reset link
// for the given email.
func (h *AuthHandler) PasswordReset(c *gin.Context) {
	var req models.PasswordResetRequest
	if !bindJSONOrFail(c, &req) {
		return
	}

	link, err := h.authService.PasswordResetLink(c.Request.Context(), req.Email)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, PasswordResetResponse{ResetLink: link})
}

// InitializeUserProfile handles POST /users/initialize. Called after
// client-side sign-in to ensure the profile document exists; identity comes
// from the verified token, never the body.
func (h *AuthHandler) InitializeUserProfile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	user, created, err := h.userService.GetOrCreate(
		c.Request.Context(),
		userID,
		c.GetString("userEmail"),
		c.GetString("userDisplayName"),
		c.GetBool("userEmailVerified"),
	)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, ProfileResponse{User: user, Created: created})
}

// GetCurrentUserProfile handles GET /users/me
func (h *AuthHandler) GetCurrentUserProfile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
