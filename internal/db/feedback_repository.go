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

const feedbackCollection = "feedback"

// firestoreFeedbackRepository implements FeedbackRepository using Firestore.
type firestoreFeedbackRepository struct {
	client *firestore.Client
}

// NewFirestoreFeedbackRepository creates a new Firestore-backed feedback repository.
func NewFirestoreFeedbackRepository(client *firestore.Client) FeedbackRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for FeedbackRepository.")
	}
	return &firestoreFeedbackRepository{client: client}
}

func decodeFeedback(doc *firestore.DocumentSnapshot) (*models.Feedback, error) {
	var fb models.Feedback
	if err := doc.DataTo(&fb); err != nil {
		return nil, fmt.Errorf("failed to decode feedback %s: %w", doc.Ref.ID, err)
	}
	fb.ID = doc.Ref.ID
	return &fb, nil
}

func (r *firestoreFeedbackRepository) collect(iter *firestore.DocumentIterator) ([]*models.Feedback, error) {
	defer iter.Stop()

	var feedbacks []*models.Feedback
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate feedback: %w", err)
		}
		fb, decErr := decodeFeedback(doc)
		if decErr != nil {
			log.Printf("Error decoding feedback (ID: %s): %v. Skipping.", doc.Ref.ID, decErr)
			continue
		}
		feedbacks = append(feedbacks, fb)
	}
	return feedbacks, nil
}

// Create adds a new feedback document with an auto-generated ID.
func (r *firestoreFeedbackRepository) Create(ctx context.Context, fb *models.Feedback) (string, error) {
	docRef := r.client.Collection(feedbackCollection).NewDoc()
	fb.ID = docRef.ID
	if _, err := docRef.Create(ctx, fb); err != nil {
		return "", fmt.Errorf("failed to create feedback: %w", err)
	}
	return docRef.ID, nil
}

// ListApproved retrieves only approved entries, the public view.
func (r *firestoreFeedbackRepository) ListApproved(ctx context.Context) ([]*models.Feedback, error) {
	query := r.client.Collection(feedbackCollection).Where("approved", "==", true)
	return r.collect(query.Documents(ctx))
}

// List retrieves every entry, the admin view.
func (r *firestoreFeedbackRepository) List(ctx context.Context) ([]*models.Feedback, error) {
	return r.collect(r.client.Collection(feedbackCollection).Documents(ctx))
}

// SetApproved sets the approval flag of an existing feedback document.
func (r *firestoreFeedbackRepository) SetApproved(ctx context.Context, feedbackID string, approved bool) error {
	if feedbackID == "" {
		return errors.New("feedbackID cannot be empty for SetApproved operation")
	}
	_, err := r.client.Collection(feedbackCollection).Doc(feedbackID).Update(ctx, []firestore.Update{
		{Path: "approved", Value: approved},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("feedback with ID '%s' not found for approval update: %w", feedbackID, ErrNotFound)
		}
		return fmt.Errorf("failed to update approval of feedback '%s': %w", feedbackID, err)
	}
	return nil
}

// Delete removes a feedback document.
func (r *firestoreFeedbackRepository) Delete(ctx context.Context, feedbackID string) error {
	if feedbackID == "" {
		return errors.New("feedbackID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(feedbackCollection).Doc(feedbackID).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("feedback with ID '%s' not found for deletion: %w", feedbackID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete feedback with ID '%s': %w", feedbackID, err)
	}
	return nil
}

// Watch streams full-collection snapshots of the feedback collection.
func (r *firestoreFeedbackRepository) Watch(ctx context.Context) <-chan Snapshot[*models.Feedback] {
	return watchQuery(ctx, r.client.Collection(feedbackCollection).Query, decodeFeedback)
}
