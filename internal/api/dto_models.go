package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/models"
)

// ErrorResponse is the standard JSON error body. Fields carries per-field
// validation messages when form binding fails.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SuccessResponse is a minimal acknowledgement body for mutations that
// return no entity.
type SuccessResponse struct {
	Message string `json:"message"`
}

// ToggleResponse reports the outcome of a favorites/cart toggle.
type ToggleResponse struct {
	ProductID string `json:"productId"`
	Added     bool   `json:"added"`
}

// CartResponse is the cart listing with its running total.
type CartResponse struct {
	Items      []*models.Entry `json:"items"`
	TotalPrice float64         `json:"totalPrice"`
	Count      int             `json:"count"`
}

// SignUpResponse returns the created profile and the email-verification
// link generated for the new account.
type SignUpResponse struct {
	User             *models.User `json:"user"`
	VerificationLink string       `json:"verificationLink"`
}

// ProfileResponse wraps a profile with whether it was created by this call.
type ProfileResponse struct {
	User    *models.User `json:"user"`
	Created bool         `json:"created"`
}

// PasswordResetResponse returns the generated reset link.
type PasswordResetResponse struct {
	ResetLink string `json:"resetLink"`
}

// mapServiceError maps service-layer errors to HTTP status codes and writes
// the response. Unrecognized errors become opaque 500s; the original error
// is logged, not exposed.
func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrProductNotFound),
		errors.Is(err, core.ErrOrderNotFound),
		errors.Is(err, core.ErrFeedbackNotFound),
		errors.Is(err, core.ErrMessageNotFound),
		errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrEmptyCart),
		errors.Is(err, core.ErrUnsupportedPayment),
		errors.Is(err, core.ErrImageRequired),
		errors.Is(err, core.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrOrderNotPending),
		errors.Is(err, core.ErrEmailExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}
