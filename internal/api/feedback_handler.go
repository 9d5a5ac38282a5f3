package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/models"
)

// FeedbackHandler handles public testimonial submission/listing and the
// admin moderation endpoints.
type FeedbackHandler struct {
	feedbackService core.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(fs core.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: fs}
}

// SubmitFeedback handles POST /feedback. Submissions start unapproved and
// stay hidden from the public list until an admin approves them.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req models.CreateFeedbackRequest
	if !bindJSONOrFail(c, &req) {
		return
	}

	fb, err := h.feedbackService.Submit(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// ListPublicFeedback handles GET /feedback, returning approved entries only.
func (h *FeedbackHandler) ListPublicFeedback(c *gin.Context) {
	entries, err := h.feedbackService.ListPublic(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListAllFeedback handles GET /admin/feedback, including unapproved entries.
func (h *FeedbackHandler) ListAllFeedback(c *gin.Context) {
	entries, err := h.feedbackService.ListAll(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ApproveFeedback handles PUT /admin/feedback/:feedbackId/approve
func (h *FeedbackHandler) ApproveFeedback(c *gin.Context) {
	adminID := c.GetString("userID")
	feedbackID := c.Param("feedbackId")
	if feedbackID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Feedback ID is required in path"})
		return
	}

	if err := h.feedbackService.Approve(c.Request.Context(), adminID, feedbackID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Feedback approved"})
}

// DeleteFeedback handles DELETE /admin/feedback/:feedbackId
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	adminID := c.GetString("userID")
	feedbackID := c.Param("feedbackId")
	if feedbackID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Feedback ID is required in path"})
		return
	}

	if err := h.feedbackService.Delete(c.Request.Context(), adminID, feedbackID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StreamFeedback handles GET /admin/feedback/stream for the moderation view.
func (h *FeedbackHandler) StreamFeedback(c *gin.Context) {
	streamSnapshots(c, h.feedbackService.WatchAll(c.Request.Context()))
}
