package models

import "time"

// Order statuses. Orders are created pending and moved to completed by an
// admin; there are no other transitions.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Order is a document in the "orders" collection, written once at checkout.
// Items and TotalPrice are a snapshot of the cart at checkout time; the
// owner never mutates the order afterwards, only an admin does (status,
// delete).
type Order struct {
	ID            string    `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID        string    `json:"userId" firestore:"userId"`
	Name          string    `json:"name" firestore:"name"`
	City          string    `json:"city" firestore:"city"`
	Area          string    `json:"area" firestore:"area"`
	Address       string    `json:"address" firestore:"address"`
	Floor         string    `json:"floor,omitempty" firestore:"floor,omitempty"`
	Phone         string    `json:"phone" firestore:"phone"`
	PaymentMethod string    `json:"paymentMethod" firestore:"paymentMethod"`
	Items         []Entry   `json:"items" firestore:"items"`
	TotalPrice    float64   `json:"totalPrice" firestore:"totalPrice"`
	Status        string    `json:"status" firestore:"status"`
	Timestamp     time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}
