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

const ordersCollection = "orders"

// firestoreOrderRepository implements OrderRepository using Firestore.
type firestoreOrderRepository struct {
	client *firestore.Client
}

// NewFirestoreOrderRepository creates a new Firestore-backed order repository.
func NewFirestoreOrderRepository(client *firestore.Client) OrderRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for OrderRepository.")
	}
	return &firestoreOrderRepository{client: client}
}

func decodeOrder(doc *firestore.DocumentSnapshot) (*models.Order, error) {
	var order models.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", doc.Ref.ID, err)
	}
	order.ID = doc.Ref.ID
	return &order, nil
}

// Create adds a new order document with an auto-generated ID and sets
// order.ID before saving. Timestamp is handled by serverTimestamp.
func (r *firestoreOrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	docRef := r.client.Collection(ordersCollection).NewDoc()
	order.ID = docRef.ID
	if _, err := docRef.Create(ctx, order); err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves an order document by its ID.
func (r *firestoreOrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	if orderID == "" {
		return nil, errors.New("orderID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(ordersCollection).Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("order with ID '%s' not found: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order with ID '%s': %w", orderID, err)
	}
	return decodeOrder(docSnap)
}

// List retrieves every order, newest first.
func (r *firestoreOrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	iter := r.client.Collection(ordersCollection).OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var orders []*models.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}
		order, decErr := decodeOrder(doc)
		if decErr != nil {
			log.Printf("Error decoding order (ID: %s): %v. Skipping.", doc.Ref.ID, decErr)
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateStatus sets the status field of an existing order.
func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, orderID, orderStatus string) error {
	if orderID == "" {
		return errors.New("orderID cannot be empty for UpdateStatus operation")
	}
	_, err := r.client.Collection(ordersCollection).Doc(orderID).Update(ctx, []firestore.Update{
		{Path: "status", Value: orderStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("order with ID '%s' not found for status update: %w", orderID, ErrNotFound)
		}
		return fmt.Errorf("failed to update status of order '%s': %w", orderID, err)
	}
	return nil
}

// Delete removes an order document.
func (r *firestoreOrderRepository) Delete(ctx context.Context, orderID string) error {
	if orderID == "" {
		return errors.New("orderID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(ordersCollection).Doc(orderID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete order with ID '%s': %w", orderID, err)
	}
	return nil
}

// Watch streams full-collection snapshots of the orders collection, newest first.
func (r *firestoreOrderRepository) Watch(ctx context.Context) <-chan Snapshot[*models.Order] {
	return watchQuery(ctx, r.client.Collection(ordersCollection).OrderBy("timestamp", firestore.Desc), decodeOrder)
}
