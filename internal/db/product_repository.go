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

// The collection name is capitalized for historical reasons; the storefront
// data was seeded that way and renaming would orphan existing documents.
const productsCollection = "Products"

// firestoreProductRepository implements ProductRepository using Firestore.
type firestoreProductRepository struct {
	client *firestore.Client
}

// NewFirestoreProductRepository creates a new Firestore-backed product repository.
func NewFirestoreProductRepository(client *firestore.Client) ProductRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProductRepository.")
	}
	return &firestoreProductRepository{client: client}
}

func decodeProduct(doc *firestore.DocumentSnapshot) (*models.Product, error) {
	var product models.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", doc.Ref.ID, err)
	}
	product.ID = doc.Ref.ID
	return &product, nil
}

// Create adds a new product document with an auto-generated ID and sets
// product.ID before saving. CreatedAt is handled by serverTimestamp.
func (r *firestoreProductRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	docRef := r.client.Collection(productsCollection).NewDoc()
	product.ID = docRef.ID
	if _, err := docRef.Create(ctx, product); err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a product document by its ID.
func (r *firestoreProductRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, errors.New("productID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(productsCollection).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("product with ID '%s' not found: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product with ID '%s': %w", productID, err)
	}
	return decodeProduct(docSnap)
}

// List retrieves every product. The catalog is small (a few hundred items at
// most) and filtering happens in memory in the service layer, matching the
// storefront's behavior.
func (r *firestoreProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	iter := r.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	var products []*models.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}
		product, decErr := decodeProduct(doc)
		if decErr != nil {
			log.Printf("Error decoding product (ID: %s): %v. Skipping.", doc.Ref.ID, decErr)
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// Update overwrites the mutable fields of an existing product document.
// Field updates are explicit so the serverTimestamp on CreatedAt is never
// clobbered by an edit.
func (r *firestoreProductRepository) Update(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		return errors.New("product ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(productsCollection).Doc(product.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: product.Name},
		{Path: "description", Value: product.Description},
		{Path: "price", Value: product.Price},
		{Path: "category", Value: product.Category},
		{Path: "imageUrl", Value: product.ImageURL},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("product with ID '%s' not found for update: %w", product.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update product with ID '%s': %w", product.ID, err)
	}
	return nil
}

// Delete removes a product document.
func (r *firestoreProductRepository) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return errors.New("productID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(productsCollection).Doc(productID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete product with ID '%s': %w", productID, err)
	}
	return nil
}

// Watch streams full-collection snapshots of the products collection.
func (r *firestoreProductRepository) Watch(ctx context.Context) <-chan Snapshot[*models.Product] {
	return watchQuery(ctx, r.client.Collection(productsCollection).Query, decodeProduct)
}
