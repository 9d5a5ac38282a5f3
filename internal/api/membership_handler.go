package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/db"
)

// MembershipHandler handles the authenticated favorites and cart endpoints.
// Both are per-user membership sets keyed by product ID; the routes differ
// only in which subcollection they address.
type MembershipHandler struct {
	membershipService core.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(ms core.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: ms}
}

// ListFavorites handles GET /me/favorites
func (h *MembershipHandler) ListFavorites(c *gin.Context) {
	h.list(c, db.KindFavorites)
}

// ToggleFavorite handles POST /me/favorites/:productId/toggle
func (h *MembershipHandler) ToggleFavorite(c *gin.Context) {
	h.toggle(c, db.KindFavorites)
}

// ToggleCartItem handles POST /me/cart/:productId/toggle
func (h *MembershipHandler) ToggleCartItem(c *gin.Context) {
	h.toggle(c, db.KindCart)
}

// ListCart handles GET /me/cart, returning the entries with a running total.
func (h *MembershipHandler) ListCart(c *gin.Context) {
	userID := c.GetString("userID")
	entries, err := h.membershipService.List(c.Request.Context(), userID, db.KindCart)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CartResponse{
		Items:      entries,
		TotalPrice: core.CartTotal(entries),
		Count:      len(entries),
	})
}

func (h *MembershipHandler) list(c *gin.Context, kind db.MembershipKind) {
	userID := c.GetString("userID")
	entries, err := h.membershipService.List(c.Request.Context(), userID, kind)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *MembershipHandler) toggle(c *gin.Context, kind db.MembershipKind) {
	userID := c.GetString("userID")
	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product ID is required in path"})
		return
	}

	added, err := h.membershipService.Toggle(c.Request.Context(), userID, kind, productID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToggleResponse{ProductID: productID, Added: added})
}
