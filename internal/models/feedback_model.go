package models

import "time"

// Feedback is a visitor testimonial in the "feedback" collection. Entries
// are created unapproved and only become publicly visible once an admin
// approves them.
type Feedback struct {
	ID        string    `json:"id" firestore:"-"` // Document ID, auto-generated
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Message   string    `json:"message" firestore:"message"`
	Approved  bool      `json:"approved" firestore:"approved"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
