package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// messageService implements MessageService.
type messageService struct {
	messageRepo  db.MessageRepository
	auditService AuditService
}

// NewMessageService creates a new MessageService instance.
func NewMessageService(messageRepo db.MessageRepository, auditService AuditService) MessageService {
	return &messageService{
		messageRepo:  messageRepo,
		auditService: auditService,
	}
}

// Submit stores a contact-form submission.
func (s *messageService) Submit(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error) {
	msg := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if _, err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to submit message: %w", err)
	}
	return msg, nil
}

// List returns every contact message, newest first.
func (s *messageService) List(ctx context.Context) ([]*models.Message, error) {
	return s.messageRepo.List(ctx)
}

// Delete removes a contact message.
func (s *messageService) Delete(ctx context.Context, adminID, messageID string) error {
	if err := s.messageRepo.Delete(ctx, messageID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrMessageNotFound, messageID)
		}
		return err
	}
	s.audit(ctx, adminID, messageID)
	return nil
}

// WatchMessages streams full message-list snapshots.
func (s *messageService) WatchMessages(ctx context.Context) <-chan db.Snapshot[*models.Message] {
	return s.messageRepo.Watch(ctx)
}

func (s *messageService) audit(ctx context.Context, adminID, messageID string) {
	if s.auditService == nil {
		return
	}
	err := s.auditService.CreateAuditLog(ctx, models.AuditLog{
		UserID:     adminID,
		Action:     "MESSAGE_DELETE",
		TargetType: "MESSAGE",
		TargetID:   messageID,
	})
	if err != nil {
		log.Printf("audit log write failed (action=MESSAGE_DELETE target=%s): %v", messageID, err)
	}
}
