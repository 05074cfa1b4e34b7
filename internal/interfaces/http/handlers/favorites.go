// internal/interfaces/http/handlers/favorites.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/app"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// FavoritesHandler exposes the per-user favorites set
type FavoritesHandler struct {
	registry *app.Registry
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(registry *app.Registry) *FavoritesHandler {
	return &FavoritesHandler{registry: registry}
}

// ToggleFavorite flips a product's membership in the user's favorites
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	favorited, err := orch.ToggleFavorite(c.Request.Context(), uint(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"product_id": uint(id),
			"favorited":  favorited,
		},
	})
}

// ListFavorites returns the user's favorite product IDs
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	ids, err := orch.ListFavorites(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"favorites": ids,
			"count":     len(ids),
		},
	})
}

func (h *FavoritesHandler) orchestrator(c *gin.Context) (*app.Orchestrator, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	orch, ok := h.registry.Get(sessionID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return nil, false
	}
	return orch, true
}

func (h *FavoritesHandler) respondError(c *gin.Context, err error) {
	switch err {
	case app.ErrProductNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case app.ErrNotSignedIn:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
