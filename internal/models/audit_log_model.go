package models

import "time"

// AuditLog records an admin mutation in the "auditLogs" collection. Writing
// an entry is best-effort: a failed audit write never fails the mutation it
// describes.
type AuditLog struct {
	ID         string                 `json:"id" firestore:"-"`
	Timestamp  time.Time              `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	UserID     string                 `json:"userId" firestore:"userId"` // Who performed the action
	Action     string                 `json:"action" firestore:"action"` // e.g. "PRODUCT_DELETE", "ORDER_COMPLETE"
	TargetType string                 `json:"targetType,omitempty" firestore:"targetType,omitempty"` // e.g. "PRODUCT", "ORDER"
	TargetID   string                 `json:"targetId,omitempty" firestore:"targetId,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
}
