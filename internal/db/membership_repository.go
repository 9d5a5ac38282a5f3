package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"handmade-backend/internal/models"
)

const usersRootCollection = "users"

// firestoreMembershipRepository implements MembershipRepository over the
// users/{uid}/favorites and users/{uid}/cart subcollections. Documents are
// keyed by product ID, so toggling membership is a single atomic Set or
// Delete instead of the storefront's original query-then-mutate pattern.
type firestoreMembershipRepository struct {
	client *firestore.Client
}

// NewFirestoreMembershipRepository creates a new Firestore-backed membership repository.
func NewFirestoreMembershipRepository(client *firestore.Client) MembershipRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for MembershipRepository.")
	}
	return &firestoreMembershipRepository{client: client}
}

func (r *firestoreMembershipRepository) subcollection(userID string, kind MembershipKind) *firestore.CollectionRef {
	return r.client.Collection(usersRootCollection).Doc(userID).Collection(string(kind))
}

func decodeEntry(doc *firestore.DocumentSnapshot) (*models.Entry, error) {
	var entry models.Entry
	if err := doc.DataTo(&entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry %s: %w", doc.Ref.ID, err)
	}
	// The document ID is authoritative for the product ID.
	entry.ProductID = doc.Ref.ID
	return &entry, nil
}

// List retrieves all entries of the given subcollection.
func (r *firestoreMembershipRepository) List(ctx context.Context, userID string, kind MembershipKind) ([]*models.Entry, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for List operation")
	}
	iter := r.subcollection(userID, kind).Documents(ctx)
	defer iter.Stop()

	var entries []*models.Entry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate %s entries for user '%s': %w", kind, userID, err)
		}
		entry, decErr := decodeEntry(doc)
		if decErr != nil {
			log.Printf("Error decoding %s entry (ID: %s) for user '%s': %v. Skipping.", kind, doc.Ref.ID, userID, decErr)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Exists reports whether an entry for the product is present.
func (r *firestoreMembershipRepository) Exists(ctx context.Context, userID string, kind MembershipKind, productID string) (bool, error) {
	if userID == "" || productID == "" {
		return false, errors.New("userID and productID cannot be empty for Exists operation")
	}
	_, err := r.subcollection(userID, kind).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check %s entry '%s' for user '%s': %w", kind, productID, userID, err)
	}
	return true, nil
}

// Set writes the entry under its product ID, creating or overwriting it.
func (r *firestoreMembershipRepository) Set(ctx context.Context, userID string, kind MembershipKind, entry *models.Entry) error {
	if userID == "" || entry == nil || entry.ProductID == "" {
		return errors.New("userID and entry.ProductID cannot be empty for Set operation")
	}
	if _, err := r.subcollection(userID, kind).Doc(entry.ProductID).Set(ctx, entry); err != nil {
		return fmt.Errorf("failed to set %s entry '%s' for user '%s': %w", kind, entry.ProductID, userID, err)
	}
	return nil
}

// Delete removes the entry for the product. Deleting an absent entry is a
// no-op, which makes concurrent toggles from multiple sessions converge.
func (r *firestoreMembershipRepository) Delete(ctx context.Context, userID string, kind MembershipKind, productID string) error {
	if userID == "" || productID == "" {
		return errors.New("userID and productID cannot be empty for Delete operation")
	}
	if _, err := r.subcollection(userID, kind).Doc(productID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete %s entry '%s' for user '%s': %w", kind, productID, userID, err)
	}
	return nil
}

// Clear deletes every entry in the subcollection, used to empty the cart
// after checkout.
func (r *firestoreMembershipRepository) Clear(ctx context.Context, userID string, kind MembershipKind) error {
	if userID == "" {
		return errors.New("userID cannot be empty for Clear operation")
	}
	iter := r.subcollection(userID, kind).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to iterate %s entries for clearing (user '%s'): %w", kind, userID, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("failed to delete %s entry '%s' while clearing (user '%s'): %w", kind, doc.Ref.ID, userID, err)
		}
	}
	return nil
}

// Watch streams full snapshots of the subcollection.
func (r *firestoreMembershipRepository) Watch(ctx context.Context, userID string, kind MembershipKind) <-chan Snapshot[*models.Entry] {
	return watchQuery(ctx, r.subcollection(userID, kind).Query, decodeEntry)
}
