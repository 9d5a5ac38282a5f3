package models

import "time"

// Product is a storefront product document in the "Products" collection.
// Price is kept as the raw stored value: new documents hold a number, but
// legacy documents created by hand carry free-text currency strings such as
// "250 EGP". NumericPrice is the parsed form, populated by the catalog
// service and never written back to Firestore.
type Product struct {
	ID           string      `json:"id" firestore:"-"` // Document ID, auto-generated
	Name         string      `json:"name" firestore:"name"`
	Description  string      `json:"description" firestore:"description"`
	Price        interface{} `json:"price" firestore:"price"`
	Category     string      `json:"category,omitempty" firestore:"category,omitempty"`
	ImageURL     string      `json:"imageUrl" firestore:"imageUrl"`
	NumericPrice *float64    `json:"numericPrice" firestore:"-"` // nil when the raw price is unparseable
	CreatedAt    time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
