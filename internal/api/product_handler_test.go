package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/models"
)

func TestBrowseCatalogPassesFilters(t *testing.T) {
	svc := &fakeProductService{page: &core.CatalogPage{
		Items: []*models.Product{}, Page: 1, PageSize: 9,
	}}
	router := gin.New()
	router.GET("/products", NewProductHandler(svc).BrowseCatalog)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?search=vase&category=Pottery&price=100-300&page=2", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.lastFilter.Search != "vase" || svc.lastFilter.Category != "Pottery" {
		t.Fatalf("filters not forwarded: %+v", svc.lastFilter)
	}
	if svc.lastFilter.PriceBucket != "100-300" || svc.lastFilter.Page != 2 {
		t.Fatalf("price/page not forwarded: %+v", svc.lastFilter)
	}
}

func TestBrowseCatalogRejectsNonNumericPage(t *testing.T) {
	svc := &fakeProductService{page: &core.CatalogPage{}}
	router := gin.New()
	router.GET("/products", NewProductHandler(svc).BrowseCatalog)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?page=two", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric page, got %d", w.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := &fakeProductService{err: fmt.Errorf("%w: prod-9", core.ErrProductNotFound)}
	router := gin.New()
	router.GET("/products/:productId", NewProductHandler(svc).GetProduct)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/prod-9", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func productFormRequest(t *testing.T, url string, withImage bool) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("name", "Vase")
	writer.WriteField("description", "Hand thrown ceramic vase")
	writer.WriteField("price", "250")
	writer.WriteField("category", "Pottery")
	if withImage {
		part, err := writer.CreateFormFile("image", "vase.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write([]byte("jpegdata"))
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCreateProductMultipart(t *testing.T) {
	svc := &fakeProductService{product: &models.Product{ID: "prod-1", Name: "Vase", ImageURL: "https://img.example/vase.jpg"}}
	router := gin.New()
	router.POST("/admin/products", asUser("admin-1"), NewProductHandler(svc).CreateProduct)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, productFormRequest(t, "/admin/products", true))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var product models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if product.ID != "prod-1" {
		t.Fatalf("unexpected product in response: %+v", product)
	}
}

func TestCreateProductWithoutImageMapsTo400(t *testing.T) {
	svc := &fakeProductService{err: core.ErrImageRequired}
	router := gin.New()
	router.POST("/admin/products", asUser("admin-1"), NewProductHandler(svc).CreateProduct)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, productFormRequest(t, "/admin/products", false))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing image, got %d", w.Code)
	}
}

func TestCreateProductMissingFields(t *testing.T) {
	svc := &fakeProductService{product: &models.Product{}}
	router := gin.New()
	router.POST("/admin/products", asUser("admin-1"), NewProductHandler(svc).CreateProduct)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("name", "Vase")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/products", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing form fields, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if _, ok := resp.Fields["price"]; !ok {
		t.Fatalf("expected a field error for price, got %v", resp.Fields)
	}
}
