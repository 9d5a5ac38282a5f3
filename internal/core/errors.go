package core

import "errors"

// Sentinel errors surfaced by the service layer. Handlers map these to HTTP
// status codes.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrMessageNotFound  = errors.New("message not found")

	// ErrEmptyCart is returned when checkout is attempted with no cart entries.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderNotPending is returned when completing an order that is not pending.
	ErrOrderNotPending = errors.New("order is not pending")
	// ErrUnsupportedPayment is returned for any payment method other than the
	// single supported option.
	ErrUnsupportedPayment = errors.New("unsupported payment method")
	// ErrImageRequired is returned when a product is created without an image.
	ErrImageRequired = errors.New("product image is required")
	// ErrInvalidPrice is returned when an admin submits a price that does not
	// parse to a number.
	ErrInvalidPrice = errors.New("price must be a number")
	// ErrEmailExists is returned when signing up with an already registered email.
	ErrEmailExists = errors.New("email is already registered")
)
