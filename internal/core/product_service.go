package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// productService implements ProductService.
type productService struct {
	productRepo  db.ProductRepository
	uploader     Uploader
	auditService AuditService
}

// NewProductService creates a new ProductService instance.
func NewProductService(productRepo db.ProductRepository, uploader Uploader, auditService AuditService) ProductService {
	return &productService{
		productRepo:  productRepo,
		uploader:     uploader,
		auditService: auditService,
	}
}

// BrowseCatalog loads the full product list, parses prices, applies the
// filters and returns the requested page. Categories are derived from the
// unfiltered list so the dropdown stays stable while filters are active.
func (s *productService) BrowseCatalog(ctx context.Context, filter CatalogFilter) (*CatalogPage, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, p := range products {
		p.NumericPrice = ParsePrice(p.Price)
	}

	categories := distinctCategories(products)
	filtered := filterProducts(products, filter)
	items, page, totalPages := paginate(filtered, filter.Page)

	return &CatalogPage{
		Items:      items,
		Page:       page,
		PageSize:   catalogPageSize,
		TotalPages: totalPages,
		TotalItems: len(filtered),
		Categories: categories,
	}, nil
}

// GetProduct retrieves a single product with its parsed price.
func (s *productService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, err
	}
	product.NumericPrice = ParsePrice(product.Price)
	return product, nil
}

// CreateProduct uploads the image and writes the product document. New
// products always store a numeric price; free-text prices only exist on
// legacy documents.
func (s *productService) CreateProduct(ctx context.Context, adminID string, form models.ProductForm, image io.Reader, filename string) (*models.Product, error) {
	price := ParsePrice(form.Price)
	if price == nil {
		return nil, ErrInvalidPrice
	}
	if image == nil {
		return nil, ErrImageRequired
	}

	imageURL, err := s.uploader.Upload(ctx, image, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to upload product image: %w", err)
	}

	product := &models.Product{
		Name:         form.Name,
		Description:  form.Description,
		Price:        *price,
		Category:     form.Category,
		ImageURL:     imageURL,
		NumericPrice: price,
	}
	if _, err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.audit(ctx, adminID, "PRODUCT_CREATE", product.ID, map[string]interface{}{"name": product.Name})
	return product, nil
}

// UpdateProduct edits an existing product. The image is re-uploaded only
// when a new file was attached; otherwise the stored reference is kept.
func (s *productService) UpdateProduct(ctx context.Context, adminID, productID string, form models.ProductForm, image io.Reader, filename string) (*models.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, err
	}

	price := ParsePrice(form.Price)
	if price == nil {
		return nil, ErrInvalidPrice
	}

	imageURL := existing.ImageURL
	if image != nil {
		imageURL, err = s.uploader.Upload(ctx, image, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to upload product image: %w", err)
		}
	}

	updated := &models.Product{
		ID:           productID,
		Name:         form.Name,
		Description:  form.Description,
		Price:        *price,
		Category:     form.Category,
		ImageURL:     imageURL,
		NumericPrice: price,
		CreatedAt:    existing.CreatedAt,
	}
	if err := s.productRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, err
	}

	s.audit(ctx, adminID, "PRODUCT_UPDATE", productID, map[string]interface{}{"name": updated.Name})
	return updated, nil
}

// DeleteProduct removes a product document.
func (s *productService) DeleteProduct(ctx context.Context, adminID, productID string) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return err
	}
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}
	s.audit(ctx, adminID, "PRODUCT_DELETE", productID, nil)
	return nil
}

// WatchProducts streams catalog snapshots with parsed prices.
func (s *productService) WatchProducts(ctx context.Context) <-chan db.Snapshot[*models.Product] {
	in := s.productRepo.Watch(ctx)
	out := make(chan db.Snapshot[*models.Product], 1)
	go func() {
		defer close(out)
		for snap := range in {
			for _, p := range snap.Docs {
				p.NumericPrice = ParsePrice(p.Price)
			}
			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (s *productService) audit(ctx context.Context, adminID, action, targetID string, details map[string]interface{}) {
	if s.auditService == nil {
		return
	}
	err := s.auditService.CreateAuditLog(ctx, models.AuditLog{
		UserID:     adminID,
		Action:     action,
		TargetType: "PRODUCT",
		TargetID:   targetID,
		Details:    details,
	})
	if err != nil {
		log.Printf("audit log write failed (action=%s target=%s): %v", action, targetID, err)
	}
}
