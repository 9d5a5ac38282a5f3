package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// feedbackService implements FeedbackService.
type feedbackService struct {
	feedbackRepo db.FeedbackRepository
	auditService AuditService
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(feedbackRepo db.FeedbackRepository, auditService AuditService) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		auditService: auditService,
	}
}

// Submit stores a new testimonial. Entries always start unapproved.
func (s *feedbackService) Submit(ctx context.Context, req models.CreateFeedbackRequest) (*models.Feedback, error) {
	fb := &models.Feedback{
		Name:     req.Name,
		Email:    req.Email,
		Message:  req.Message,
		Approved: false,
	}
	if _, err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return fb, nil
}

// ListPublic returns approved entries only. The repository query already
// filters on the approval flag; the guard here keeps unapproved entries out
// even if a backing query ever widens.
func (s *feedbackService) ListPublic(ctx context.Context) ([]*models.Feedback, error) {
	feedbacks, err := s.feedbackRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	approved := make([]*models.Feedback, 0, len(feedbacks))
	for _, fb := range feedbacks {
		if fb.Approved {
			approved = append(approved, fb)
		}
	}
	return approved, nil
}

// ListAll returns every entry, approved or not.
func (s *feedbackService) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	return s.feedbackRepo.List(ctx)
}

// Approve marks an entry as publicly visible.
func (s *feedbackService) Approve(ctx context.Context, adminID, feedbackID string) error {
	if err := s.feedbackRepo.SetApproved(ctx, feedbackID, true); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrFeedbackNotFound, feedbackID)
		}
		return err
	}
	s.audit(ctx, adminID, "FEEDBACK_APPROVE", feedbackID)
	return nil
}

// Delete removes an entry.
func (s *feedbackService) Delete(ctx context.Context, adminID, feedbackID string) error {
	if err := s.feedbackRepo.Delete(ctx, feedbackID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrFeedbackNotFound, feedbackID)
		}
		return err
	}
	s.audit(ctx, adminID, "FEEDBACK_DELETE", feedbackID)
	return nil
}

// WatchAll streams full feedback-list snapshots for the admin dashboard.
func (s *feedbackService) WatchAll(ctx context.Context) <-chan db.Snapshot[*models.Feedback] {
	return s.feedbackRepo.Watch(ctx)
}

func (s *feedbackService) audit(ctx context.Context, adminID, action, feedbackID string) {
	if s.auditService == nil {
		return
	}
	err := s.auditService.CreateAuditLog(ctx, models.AuditLog{
		UserID:     adminID,
		Action:     action,
		TargetType: "FEEDBACK",
		TargetID:   feedbackID,
	})
	if err != nil {
		log.Printf("audit log write failed (action=%s target=%s): %v", action, feedbackID, err)
	}
}
