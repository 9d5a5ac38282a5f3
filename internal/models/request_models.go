package models

// SignUpRequest is the request body for creating a new account. The field
// rules mirror the storefront sign-up form; "alphaspace" and "egyptphone"
// are custom validators registered at startup.
type SignUpRequest struct {
	FullName string `json:"fullName" binding:"required,min=6,max=30,alphaspace"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,egyptphone"`
	Password string `json:"password" binding:"required,min=8"`
}

// PasswordResetRequest asks for a password-reset link for the given email.
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckoutRequest is the shipping/contact form submitted with an order.
// PaymentMethod is nominally free-form but only "Cash on Delivery" is
// offered; the service rejects anything else.
type CheckoutRequest struct {
	Name          string `json:"name" binding:"required,min=5,max=35,alphaspace"`
	City          string `json:"city" binding:"required,min=3,alphaspace"`
	Area          string `json:"area" binding:"required,min=4,alnumspace"`
	Address       string `json:"address" binding:"required,min=5,max=100"`
	Floor         string `json:"floor"`
	Phone         string `json:"phone" binding:"required,egyptphone"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// CreateFeedbackRequest is the public testimonial form.
type CreateFeedbackRequest struct {
	Name    string `json:"name" binding:"required,min=3,max=30,alphaspace"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10,max=400"`
}

// CreateMessageRequest is the public contact form.
type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required,min=3"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=3"`
	Message string `json:"message" binding:"required,min=10"`
}

// ProductForm carries the non-file fields of the admin product create/edit
// multipart form. The image arrives as a separate file part; on edit it is
// optional and the stored reference is preserved when absent.
type ProductForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Category    string `form:"category"`
}
