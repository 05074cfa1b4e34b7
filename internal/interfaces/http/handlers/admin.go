// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// AdminHandler serves the back-office order and product views. Routes
// using it sit behind the admin middleware.
type AdminHandler struct {
	orders  *order.Service
	catalog *catalog.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(orders *order.Service, catalogSvc *catalog.Service) *AdminHandler {
	return &AdminHandler{
		orders:  orders,
		catalog: catalogSvc,
	}
}

// UpdateOrderStatusRequest carries a status change and its confirmation.
// The confirm flag must be set for the change to go through.
type UpdateOrderStatusRequest struct {
	Status  order.Status `json:"status" binding:"required"`
	Confirm bool         `json:"confirm"`
}

// ListOrders returns orders, optionally filtered by status
func (h *AdminHandler) ListOrders(c *gin.Context) {
	filter := order.Status(c.DefaultQuery("status", "all"))
	orders := h.orders.ListByStatus(filter)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// GetOrder returns a single order by ID
func (h *AdminHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	o, err := h.orders.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": o,
	})
}

// UpdateOrderStatus advances an order through its lifecycle
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.orders.UpdateStatus(uint(id), req.Status, req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, order.ErrConfirmationRequired):
			c.JSON(http.StatusPreconditionRequired, gin.H{"error": err.Error()})
		case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrInvalidStatus):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    updated,
	})
}

// GetOrderStats returns order counts per status and total revenue
func (h *AdminHandler) GetOrderStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.orders.GetStats(),
	})
}

// ListProducts returns the full catalog for the product management screen
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products := h.catalog.Products()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}
