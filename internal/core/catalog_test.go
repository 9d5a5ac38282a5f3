package core

import (
	"context"
	"fmt"
	"testing"

	"handmade-backend/internal/models"
)

func seedCatalog(t *testing.T, repo *fakeProductRepo, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		_, err := repo.Create(context.Background(), &models.Product{
			Name:     fmt.Sprintf("Product %02d", i),
			Price:    float64(i * 10),
			Category: "Pottery",
		})
		if err != nil {
			t.Fatalf("seed product %d: %v", i, err)
		}
	}
}

func TestBrowseCatalogPagination(t *testing.T) {
	repo := newFakeProductRepo()
	seedCatalog(t, repo, 20)
	svc := NewProductService(repo, &fakeUploader{url: "https://img.example/x.jpg"}, nil)

	page, err := svc.BrowseCatalog(context.Background(), CatalogFilter{Page: 1})
	if err != nil {
		t.Fatalf("BrowseCatalog: %v", err)
	}
	if len(page.Items) != 9 {
		t.Fatalf("expected 9 items on first page, got %d", len(page.Items))
	}
	if page.TotalPages != 3 || page.TotalItems != 20 {
		t.Fatalf("expected 3 pages of 20 items, got totalPages=%d totalItems=%d", page.TotalPages, page.TotalItems)
	}

	last, err := svc.BrowseCatalog(context.Background(), CatalogFilter{Page: 3})
	if err != nil {
		t.Fatalf("BrowseCatalog page 3: %v", err)
	}
	if len(last.Items) != 2 {
		t.Fatalf("expected 2 items on last page, got %d", len(last.Items))
	}
}

func TestBrowseCatalogClampsOutOfRangePage(t *testing.T) {
	repo := newFakeProductRepo()
	seedCatalog(t, repo, 12)
	svc := NewProductService(repo, &fakeUploader{url: "https://img.example/x.jpg"}, nil)

	page, err := svc.BrowseCatalog(context.Background(), CatalogFilter{Page: 99})
	if err != nil {
		t.Fatalf("BrowseCatalog: %v", err)
	}
	if page.Page != 2 {
		t.Fatalf("expected page clamped to 2, got %d", page.Page)
	}
	if len(page.Items) != 3 {
		t.Fatalf("expected 3 items on clamped page, got %d", len(page.Items))
	}

	zero, err := svc.BrowseCatalog(context.Background(), CatalogFilter{Page: 0})
	if err != nil {
		t.Fatalf("BrowseCatalog page 0: %v", err)
	}
	if zero.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", zero.Page)
	}
}

func TestBrowseCatalogEmptyResult(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeUploader{url: "https://img.example/x.jpg"}, nil)

	page, err := svc.BrowseCatalog(context.Background(), CatalogFilter{Page: 5})
	if err != nil {
		t.Fatalf("BrowseCatalog: %v", err)
	}
	if page.Page != 1 || page.TotalPages != 0 || len(page.Items) != 0 {
		t.Fatalf("expected empty page 1, got page=%d totalPages=%d items=%d", page.Page, page.TotalPages, len(page.Items))
	}
	if page.Items == nil {
		t.Fatal("expected empty slice, not nil, so the response serializes as []")
	}
}

func TestBrowseCatalogSearchIsCaseInsensitive(t *testing.T) {
	repo := newFakeProductRepo()
	repo.Create(context.Background(), &models.Product{Name: "Ceramic Vase", Price: 150.0})
	repo.Create(context.Background(), &models.Product{Name: "Wool Scarf", Price: 80.0})
	svc := NewProductService(repo, &fakeUploader{url: "https://img.example/x.jpg"}, nil)

	page, err := svc.BrowseCatalog(context.Background(), CatalogFilter{Search: "cerAMic", Page: 1})
	if err != nil {
		t.Fatalf("BrowseCatalog: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "Ceramic Vase" {
		t.Fatalf("expected only the vase, got %d items", len(page.Items))
	}
}

func TestBrowseCatalogPriceBucketFilter(t *testing.T) {
	repo := newFakeProductRepo()
	repo.Create(context.Background(), &models.Product{Name: "Cheap", Price: 50.0})
	repo.Create(context.Background(), &models.Product{Name: "Mid", Price: "250 EGP"})
	repo.Create(context.Background(), &models.Product{Name: "Unpriced", Price: "ask in store"})
	svc := NewProductService(repo, &fakeUploader{url: "https://img.example/x.jpg"}, nil)

	page, err := svc.BrowseCatalog(context.Background(), CatalogFilter{PriceBucket: PriceBucket100To300, Page: 1})
	if err != nil {
		t.Fatalf("BrowseCatalog: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "Mid" {
		t.Fatalf("expected only the legacy-priced product in bucket, got %d items", len(page.Items))
	}

	// With no bucket selected the unpriced product is still listed.
	all, err := svc.BrowseCatalog(context.Background(), CatalogFilter{Page: 1})
	if err != nil {
		t.Fatalf("BrowseCatalog: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("expected all 3 products without a bucket, got %d", len(all.Items))
	}
}

func TestBrowseCatalogCategoriesComeFromUnfilteredList(t *testing.T) {
	repo := newFakeProductRepo()
	repo.Create(context.Background(), &models.Product{Name: "Vase", Price: 150.0, Category: "Pottery"})
	repo.Create(context.Background(), &models.Product{Name: "Scarf", Price: 80.0, Category: "Textiles"})
	repo.Create(context.Background(), &models.Product{Name: "Bowl", Price: 90.0, Category: "Pottery"})
	svc := NewProductService(repo, &fakeUploader{url: "https://img.example/x.jpg"}, nil)

	page, err := svc.BrowseCatalog(context.Background(), CatalogFilter{Category: "Textiles", Page: 1})
	if err != nil {
		t.Fatalf("BrowseCatalog: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 textile product, got %d", len(page.Items))
	}
	if len(page.Categories) != 2 {
		t.Fatalf("expected both categories in dropdown while filtered, got %v", page.Categories)
	}
}
