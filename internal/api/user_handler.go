package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
)

// UserHandler handles the admin user-directory endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// StreamUsers handles GET /admin/users/stream for the admin directory view.
func (h *UserHandler) StreamUsers(c *gin.Context) {
	streamSnapshots(c, h.userService.WatchUsers(c.Request.Context()))
}
