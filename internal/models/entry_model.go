package models

import "time"

// Entry is a document in a per-user favorites or cart subcollection
// (users/{uid}/favorites, users/{uid}/cart). Presence of an entry encodes
// membership; the document ID equals the product ID, so membership updates
// are single keyed writes. Entries snapshot the product fields they were
// created from and carry no quantity: the cart is a 0/1 membership set.
type Entry struct {
	ProductID   string    `json:"productId" firestore:"productId"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	ImageURL    string    `json:"imageUrl" firestore:"imageUrl"`
	Price       *float64  `json:"price" firestore:"price"`
	Category    string    `json:"category,omitempty" firestore:"category,omitempty"`
	AddedAt     time.Time `json:"addedAt" firestore:"addedAt,serverTimestamp"`
}
