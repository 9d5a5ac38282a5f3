package models

import "time"

// User roles. Authorization on the admin subtree is a role attribute on the
// profile, checked server-side; there is no hard-coded admin email in
// request paths.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is a profile document in the "Users" collection. The Firebase Auth
// UID is the document ID. EmailVerified is denormalized from the auth
// service and refreshed on profile initialization.
type User struct {
	ID            string    `json:"id" firestore:"-"` // Firebase Auth UID, the document ID
	FullName      string    `json:"fullName" firestore:"fullName"`
	Phone         string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email         string    `json:"email" firestore:"email"`
	Role          string    `json:"role" firestore:"role"`
	EmailVerified bool      `json:"emailVerified" firestore:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
