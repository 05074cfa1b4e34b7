// internal/interfaces/http/handlers/catalog_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func newCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := catalog.NewService()
	require.NoError(t, err)
	handler := NewCatalogHandler(svc)

	router := gin.New()
	router.GET("/products", handler.GetProducts)
	router.GET("/products/categories", handler.GetCategories)
	router.GET("/products/:id", handler.GetProduct)
	return router
}

func doRequest(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestCatalogHandler_GetProducts(t *testing.T) {
	router := newCatalogRouter(t)

	tests := []struct {
		name      string
		target    string
		wantCount float64
	}{
		{"full catalog", "/products", 12},
		{"trending category", "/products?category=Trending%20Now", 6},
		{"sale category", "/products?category=Sale", 6},
		{"search query", "/products?q=jacket", 3},
		{"query wins over category", "/products?q=coat&category=Sale", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data struct {
					Count float64 `json:"count"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCount, body.Data.Count)
		})
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	router := newCatalogRouter(t)

	w := doRequest(router, http.MethodGet, "/products/1")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data catalog.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Jacket", body.Data.Title)
	assert.Equal(t, int64(4999), body.Data.Price)
}

func TestCatalogHandler_GetProductNotFound(t *testing.T) {
	router := newCatalogRouter(t)

	w := doRequest(router, http.MethodGet, "/products/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_GetProductInvalidID(t *testing.T) {
	router := newCatalogRouter(t)

	w := doRequest(router, http.MethodGet, "/products/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_GetCategories(t *testing.T) {
	router := newCatalogRouter(t)

	w := doRequest(router, http.MethodGet, "/products/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Data, "All")
	assert.Contains(t, body.Data, "Trending Now")
	assert.Contains(t, body.Data, "Sale")
}
