package middleware

import (
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/models"
)

// ErrorResponse mirrors the one in internal/api to avoid an import cycle.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides Gin middleware for Firebase token authentication
// and role checks.
type AuthMiddleware struct {
	firebaseAuthClient *auth.Client
	userService        core.UserService
}

// NewAuthMiddleware creates a new AuthMiddleware instance. It panics if
// either dependency is nil, as authenticated routes cannot function without
// them.
func NewAuthMiddleware(fbAuthClient *auth.Client, userService core.UserService) *AuthMiddleware {
	if fbAuthClient == nil {
		panic("Firebase Auth client is not initialized for AuthMiddleware")
	}
	if userService == nil {
		panic("UserService is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{firebaseAuthClient: fbAuthClient, userService: userService}
}

// VerifyToken verifies a Firebase ID token from the Authorization header and
// sets the user's identity in the Gin context.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}
		idToken := parts[1]

		token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			log.Printf("AuthMiddleware: error verifying Firebase ID token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		c.Set("userID", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set("userEmail", email)
		}
		if name, ok := token.Claims["name"].(string); ok {
			c.Set("userDisplayName", name)
		}
		if verified, ok := token.Claims["email_verified"].(bool); ok {
			c.Set("userEmailVerified", verified)
		}

		c.Next()
	}
}

// RequireVerified rejects tokens whose email_verified claim is false. The
// storefront blocks unverified accounts at login; this enforces the same
// rule on routes that mutate user-owned data. Must run after VerifyToken.
func (m *AuthMiddleware) RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("userEmailVerified") {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Please verify your email before using this feature"})
			return
		}
		c.Next()
	}
}

// RequireAdmin loads the caller's profile and rejects non-admin roles.
// Authorization is the role attribute on the profile, enforced here at the
// data layer rather than by a client-side email check. Must run after
// VerifyToken.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
			return
		}

		user, err := m.userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			log.Printf("AuthMiddleware: failed to load profile for admin check (uid=%s): %v", userID, err)
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
			return
		}

		c.Set("userRole", user.Role)
		c.Next()
	}
}
