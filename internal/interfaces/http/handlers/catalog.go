// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler serves the product catalog
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// GetProducts returns products filtered by search query and category.
// A non-empty query wins over the category.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	query := c.Query("q")
	category := catalog.Category(c.DefaultQuery("category", string(catalog.CategoryAll)))

	products := h.catalog.Filter(query, category)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetProduct returns a single product by ID
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, ok := h.catalog.Get(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// GetCategories returns the selectable category chips
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": catalog.Categories(),
	})
}
