package core

import (
	"context"
	"errors"
	"fmt"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// membershipService implements MembershipService over the per-user
// favorites/cart subcollections.
type membershipService struct {
	membershipRepo db.MembershipRepository
	productRepo    db.ProductRepository
}

// NewMembershipService creates a new MembershipService instance.
func NewMembershipService(membershipRepo db.MembershipRepository, productRepo db.ProductRepository) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		productRepo:    productRepo,
	}
}

// Toggle flips membership for the product. Because entries are keyed by
// product ID, toggling twice from either state restores the original state,
// and a concurrent remove from another session degrades to a no-op delete.
func (s *membershipService) Toggle(ctx context.Context, userID string, kind db.MembershipKind, productID string) (bool, error) {
	exists, err := s.membershipRepo.Exists(ctx, userID, kind, productID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.membershipRepo.Delete(ctx, userID, kind, productID); err != nil {
			return false, err
		}
		return false, nil
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return false, err
	}

	entry := &models.Entry{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Price:       ParsePrice(product.Price),
		Category:    product.Category,
	}
	if err := s.membershipRepo.Set(ctx, userID, kind, entry); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the entries of the user's subcollection.
func (s *membershipService) List(ctx context.Context, userID string, kind db.MembershipKind) ([]*models.Entry, error) {
	return s.membershipRepo.List(ctx, userID, kind)
}

// CartTotal sums entry prices. Entries are a membership set, so every entry
// counts exactly once and there is no quantity multiplier; entries with an
// unparseable price count as zero, as in the storefront.
func CartTotal(entries []*models.Entry) float64 {
	var total float64
	for _, e := range entries {
		if e.Price != nil {
			total += *e.Price
		}
	}
	return total
}
