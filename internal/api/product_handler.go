package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/models"
)

// ProductHandler handles the public catalog endpoints and the admin product
// management endpoints.
type ProductHandler struct {
	productService core.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(ps core.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

// BrowseCatalog handles GET /products. Filters arrive as query parameters:
// search (name substring), category (exact), price (bucket name), page.
func (h *ProductHandler) BrowseCatalog(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "page must be an integer"})
			return
		}
		page = parsed
	}

	filter := core.CatalogFilter{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		PriceBucket: c.Query("price"),
		Page:        page,
	}

	catalogPage, err := h.productService.BrowseCatalog(c.Request.Context(), filter)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogPage)
}

// GetProduct handles GET /products/:productId
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product ID is required in path"})
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// StreamProducts handles GET /products/stream, pushing full catalog
// snapshots as server-sent events whenever the collection changes.
func (h *ProductHandler) StreamProducts(c *gin.Context) {
	streamSnapshots(c, h.productService.WatchProducts(c.Request.Context()))
}

// bindProductForm binds the multipart product form and opens the attached
// image file, if any. A nil reader means no image part was sent.
func bindProductForm(c *gin.Context) (models.ProductForm, io.ReadCloser, string, bool) {
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		if fields := bindingErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: fields})
		} else {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid product form", Details: err.Error()})
		}
		return form, nil, "", false
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No usable image part. Create rejects a missing image at the
		// service layer; update keeps the stored reference.
		return form, nil, "", true
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read image file", Details: err.Error()})
		return form, nil, "", false
	}
	return form, file, fileHeader.Filename, true
}

// CreateProduct handles POST /admin/products. The body is a multipart form
// with the product fields plus a required "image" file part.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	adminID := c.GetString("userID")

	form, image, filename, ok := bindProductForm(c)
	if !ok {
		return
	}
	var reader io.Reader
	if image != nil {
		defer image.Close()
		reader = image
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), adminID, form, reader, filename)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/:productId. The "image" file
// part is optional; when absent the stored image reference is kept.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	adminID := c.GetString("userID")
	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product ID is required in path"})
		return
	}

	form, image, filename, ok := bindProductForm(c)
	if !ok {
		return
	}
	var reader io.Reader
	if image != nil {
		defer image.Close()
		reader = image
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), adminID, productID, form, reader, filename)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:productId
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	adminID := c.GetString("userID")
	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product ID is required in path"})
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), adminID, productID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
