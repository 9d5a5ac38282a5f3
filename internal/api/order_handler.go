package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/models"
)

// OrderHandler handles checkout for customers and order management for
// admins.
type OrderHandler struct {
	orderService core.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os core.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// Checkout handles POST /me/checkout. The order items come from the user's
// server-side cart, not the request body; the body only carries the
// shipping form.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.CheckoutRequest
	if !bindJSONOrFail(c, &req) {
		return
	}

	order, err := h.orderService.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /admin/orders, newest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CompleteOrder handles PUT /admin/orders/:orderId/complete
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	adminID := c.GetString("userID")
	orderID := c.Param("orderId")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Order ID is required in path"})
		return
	}

	order, err := h.orderService.CompleteOrder(c.Request.Context(), adminID, orderID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /admin/orders/:orderId
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	adminID := c.GetString("userID")
	orderID := c.Param("orderId")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Order ID is required in path"})
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), adminID, orderID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StreamOrders handles GET /admin/orders/stream for the admin dashboard.
func (h *OrderHandler) StreamOrders(c *gin.Context) {
	streamSnapshots(c, h.orderService.WatchOrders(c.Request.Context()))
}
