package core

import (
	"context"
	"io"

	"firebase.google.com/go/v4/auth"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// ProductService defines catalog browsing and admin product management.
type ProductService interface {
	// BrowseCatalog evaluates the storefront filters over the full product
	// list and returns one page of results.
	BrowseCatalog(ctx context.Context, filter CatalogFilter) (*CatalogPage, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	// CreateProduct uploads the image to the external host and writes the
	// product. The image is required on create.
	CreateProduct(ctx context.Context, adminID string, form models.ProductForm, image io.Reader, filename string) (*models.Product, error)
	// UpdateProduct re-uploads the image only when a new file is attached
	// (image non-nil); otherwise the stored reference is preserved.
	UpdateProduct(ctx context.Context, adminID, productID string, form models.ProductForm, image io.Reader, filename string) (*models.Product, error)
	DeleteProduct(ctx context.Context, adminID, productID string) error
	WatchProducts(ctx context.Context) <-chan db.Snapshot[*models.Product]
}

// MembershipService defines the favorites/cart membership operations.
type MembershipService interface {
	// Toggle flips membership of the product in the user's subcollection and
	// reports whether the entry was added (true) or removed (false).
	Toggle(ctx context.Context, userID string, kind db.MembershipKind, productID string) (added bool, err error)
	List(ctx context.Context, userID string, kind db.MembershipKind) ([]*models.Entry, error)
}

// OrderService defines checkout and admin order management.
type OrderService interface {
	Checkout(ctx context.Context, userID string, req models.CheckoutRequest) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	CompleteOrder(ctx context.Context, adminID, orderID string) (*models.Order, error)
	DeleteOrder(ctx context.Context, adminID, orderID string) error
	WatchOrders(ctx context.Context) <-chan db.Snapshot[*models.Order]
}

// FeedbackService defines testimonial submission and moderation.
type FeedbackService interface {
	Submit(ctx context.Context, req models.CreateFeedbackRequest) (*models.Feedback, error)
	// ListPublic returns approved entries only.
	ListPublic(ctx context.Context) ([]*models.Feedback, error)
	ListAll(ctx context.Context) ([]*models.Feedback, error)
	Approve(ctx context.Context, adminID, feedbackID string) error
	Delete(ctx context.Context, adminID, feedbackID string) error
	WatchAll(ctx context.Context) <-chan db.Snapshot[*models.Feedback]
}

// MessageService defines contact-form submission and admin cleanup.
type MessageService interface {
	Submit(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error)
	List(ctx context.Context) ([]*models.Message, error)
	Delete(ctx context.Context, adminID, messageID string) error
	WatchMessages(ctx context.Context) <-chan db.Snapshot[*models.Message]
}

// UserService defines profile operations.
type UserService interface {
	// GetOrCreate retrieves the profile for a Firebase UID, creating it with
	// default values when missing and syncing the denormalized emailVerified
	// flag when it changed.
	GetOrCreate(ctx context.Context, userID, email, displayName string, emailVerified bool) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	WatchUsers(ctx context.Context) <-chan db.Snapshot[*models.User]
}

// AuthService wraps the account operations delegated to the auth service.
type AuthService interface {
	// SignUp creates the auth user with a display name, writes the profile
	// document and returns the email-verification link for dispatch.
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, string, error)
	// PasswordResetLink generates a password-reset link for the email.
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// AuditService defines the audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}

// Uploader pushes an image to the external image host and returns the
// hosted secure URL to store as the product's image reference.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

// AuthAdmin is the slice of the Firebase Auth admin client the AuthService
// needs; *auth.Client satisfies it.
type AuthAdmin interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	EmailVerificationLink(ctx context.Context, email string) (string, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
}
