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

const messagesCollection = "messages"

// firestoreMessageRepository implements MessageRepository using Firestore.
type firestoreMessageRepository struct {
	client *firestore.Client
}

// NewFirestoreMessageRepository creates a new Firestore-backed message repository.
func NewFirestoreMessageRepository(client *firestore.Client) MessageRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for MessageRepository.")
	}
	return &firestoreMessageRepository{client: client}
}

func decodeMessage(doc *firestore.DocumentSnapshot) (*models.Message, error) {
	var msg models.Message
	if err := doc.DataTo(&msg); err != nil {
		return nil, fmt.Errorf("failed to decode message %s: %w", doc.Ref.ID, err)
	}
	msg.ID = doc.Ref.ID
	return &msg, nil
}

// Create adds a new message document with an auto-generated ID.
func (r *firestoreMessageRepository) Create(ctx context.Context, msg *models.Message) (string, error) {
	docRef := r.client.Collection(messagesCollection).NewDoc()
	msg.ID = docRef.ID
	if _, err := docRef.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}
	return docRef.ID, nil
}

// List retrieves every contact message, newest first.
func (r *firestoreMessageRepository) List(ctx context.Context) ([]*models.Message, error) {
	iter := r.client.Collection(messagesCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var messages []*models.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate messages: %w", err)
		}
		msg, decErr := decodeMessage(doc)
		if decErr != nil {
			log.Printf("Error decoding message (ID: %s): %v. Skipping.", doc.Ref.ID, decErr)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// Delete removes a message document.
func (r *firestoreMessageRepository) Delete(ctx context.Context, messageID string) error {
	if messageID == "" {
		return errors.New("messageID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(messagesCollection).Doc(messageID).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("message with ID '%s' not found for deletion: %w", messageID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete message with ID '%s': %w", messageID, err)
	}
	return nil
}

// Watch streams full-collection snapshots of the messages collection, newest first.
func (r *firestoreMessageRepository) Watch(ctx context.Context) <-chan Snapshot[*models.Message] {
	return watchQuery(ctx, r.client.Collection(messagesCollection).OrderBy("createdAt", firestore.Desc), decodeMessage)
}
