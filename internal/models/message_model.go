package models

import "time"

// Message is a contact-form submission in the "messages" collection.
// Admins can delete messages; there is no other mutation.
type Message struct {
	ID        string    `json:"id" firestore:"-"` // Document ID, auto-generated
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Subject   string    `json:"subject" firestore:"subject"`
	Message   string    `json:"message" firestore:"message"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
