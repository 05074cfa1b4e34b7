// internal/interfaces/http/handlers/storefront.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/app"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// StorefrontHandler drives a session's orchestrator: navigation, cart
// mutations and checkout all go through here as events.
type StorefrontHandler struct {
	registry *app.Registry
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(registry *app.Registry) *StorefrontHandler {
	return &StorefrontHandler{registry: registry}
}

// SelectTabRequest represents a tab selection
type SelectTabRequest struct {
	Tab app.Tab `json:"tab" binding:"required"`
}

// AddToCartRequest carries the variant choice for the product on screen
type AddToCartRequest struct {
	Size  string `json:"size" binding:"required"`
	Color string `json:"color" binding:"required"`
}

// CompletePaymentRequest represents payment completion data
type CompletePaymentRequest struct {
	PaymentMethod   string `json:"payment_method"`
	DeliveryAddress string `json:"delivery_address"`
}

// NavigateAdminRequest represents admin sub-screen navigation
type NavigateAdminRequest struct {
	Page app.AdminPage `json:"page" binding:"required"`
}

// GetState returns the current application state snapshot
func (h *StorefrontHandler) GetState(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}
	h.respondState(c, orch)
}

// SelectTab switches the active tab
func (h *StorefrontHandler) SelectTab(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	var req SelectTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	orch.SelectTab(req.Tab)
	h.respondState(c, orch)
}

// Back navigates back from the current screen
func (h *StorefrontHandler) Back(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	orch.Back()
	h.respondState(c, orch)
}

// SelectProduct opens the detail screen for a product
func (h *StorefrontHandler) SelectProduct(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if _, err := orch.SelectProduct(uint(id)); err != nil {
		h.respondError(c, err)
		return
	}
	h.respondState(c, orch)
}

// AddToCart adds the product on screen to the cart
func (h *StorefrontHandler) AddToCart(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if _, err := orch.AddToCart(req.Size, req.Color); err != nil {
		h.respondError(c, err)
		return
	}
	h.respondState(c, orch)
}

// BuyNow dismisses the detail screen without touching the cart
func (h *StorefrontHandler) BuyNow(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	orch.BuyNow()
	h.respondState(c, orch)
}

// RemoveCartItem removes a cart line by position
func (h *StorefrontHandler) RemoveCartItem(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item index"})
		return
	}

	if err := orch.RemoveCartItem(index); err != nil {
		h.respondError(c, err)
		return
	}
	h.respondState(c, orch)
}

// Checkout moves from the cart tab to the payment screen
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	if _, err := orch.Checkout(); err != nil {
		h.respondError(c, err)
		return
	}
	h.respondState(c, orch)
}

// CompletePayment places the order and clears the cart
func (h *StorefrontHandler) CompletePayment(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	var req CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := orch.CompletePayment(c.Request.Context(), req.PaymentMethod, req.DeliveryAddress)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if placed == nil {
		// Not in the payment flow; the event was dropped.
		h.respondState(c, orch)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"order": placed,
			"state": orch.Snapshot(),
		},
	})
}

// OpenAdmin enters the admin panel from the account tab
func (h *StorefrontHandler) OpenAdmin(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	if _, err := orch.OpenAdmin(); err != nil {
		h.respondError(c, err)
		return
	}
	h.respondState(c, orch)
}

// NavigateAdmin moves between admin sub-screens
func (h *StorefrontHandler) NavigateAdmin(c *gin.Context) {
	orch, ok := h.orchestrator(c)
	if !ok {
		return
	}

	var req NavigateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	orch.NavigateAdmin(req.Page)
	h.respondState(c, orch)
}

func (h *StorefrontHandler) orchestrator(c *gin.Context) (*app.Orchestrator, bool) {
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

func (h *StorefrontHandler) respondState(c *gin.Context, orch *app.Orchestrator) {
	c.JSON(http.StatusOK, gin.H{
		"data": orch.Snapshot(),
	})
}

func (h *StorefrontHandler) respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, app.ErrProductNotFound), errors.Is(err, cart.ErrItemNotFound), errors.Is(err, order.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrAdminAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, app.ErrNotSignedIn), errors.Is(err, auth.ErrNotSignedIn):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
