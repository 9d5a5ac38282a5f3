package db

import (
	"context"

	"handmade-backend/internal/models"
)

// MembershipKind selects one of the two per-user subcollections. Both have
// identical document shape and semantics; only the collection name differs.
type MembershipKind string

const (
	KindFavorites MembershipKind = "favorites"
	KindCart      MembershipKind = "cart"
)

// ProductRepository defines storage operations for the Products collection.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (string, error) // Returns new product ID
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, productID string) error
	Watch(ctx context.Context) <-chan Snapshot[*models.Product]
}

// MembershipRepository defines storage operations for the per-user
// favorites/cart subcollections. The document ID is always the product ID,
// so Set and Delete are atomic keyed writes rather than query-then-mutate.
type MembershipRepository interface {
	List(ctx context.Context, userID string, kind MembershipKind) ([]*models.Entry, error)
	Exists(ctx context.Context, userID string, kind MembershipKind, productID string) (bool, error)
	Set(ctx context.Context, userID string, kind MembershipKind, entry *models.Entry) error
	Delete(ctx context.Context, userID string, kind MembershipKind, productID string) error
	Clear(ctx context.Context, userID string, kind MembershipKind) error
	Watch(ctx context.Context, userID string, kind MembershipKind) <-chan Snapshot[*models.Entry]
}

// OrderRepository defines storage operations for the orders collection.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (string, error) // Returns new order ID
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Delete(ctx context.Context, orderID string) error
	Watch(ctx context.Context) <-chan Snapshot[*models.Order]
}

// FeedbackRepository defines storage operations for the feedback collection.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) (string, error)
	ListApproved(ctx context.Context) ([]*models.Feedback, error)
	List(ctx context.Context) ([]*models.Feedback, error)
	SetApproved(ctx context.Context, feedbackID string, approved bool) error
	Delete(ctx context.Context, feedbackID string) error
	Watch(ctx context.Context) <-chan Snapshot[*models.Feedback]
}

// MessageRepository defines storage operations for the messages collection.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) (string, error)
	List(ctx context.Context) ([]*models.Message, error)
	Delete(ctx context.Context, messageID string) error
	Watch(ctx context.Context) <-chan Snapshot[*models.Message]
}

// UserRepository defines storage operations for the Users collection.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
	Watch(ctx context.Context) <-chan Snapshot[*models.User]
}

// AuditRepository defines storage operations for admin audit logs.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}
