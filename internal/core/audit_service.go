package core

import (
	"context"
	"errors"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// auditService implements AuditService.
type auditService struct {
	auditRepo db.AuditRepository
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(auditRepo db.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// CreateAuditLog persists an audit entry. Callers treat failures as
// non-fatal; the mutation being audited has already happened.
func (s *auditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	if logEntry.UserID == "" {
		return errors.New("audit log entry requires a userId")
	}
	if logEntry.Action == "" {
		return errors.New("audit log entry requires an action")
	}
	return s.auditRepo.Create(ctx, logEntry)
}
