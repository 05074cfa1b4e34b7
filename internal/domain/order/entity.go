// internal/domain/order/entity.go
package order

import (
	"errors"
	"time"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// StatusAll is the pseudo-status the admin view uses to list every order.
const StatusAll Status = "all"

// Sentinel errors for the order lifecycle.
var (
	ErrNotFound             = errors.New("order not found")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrConfirmationRequired = errors.New("status change requires explicit confirmation")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
)

// validTransitions is the order-status state machine. Delivered and
// cancelled are terminal: they appear as targets only, never as keys.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
}

// IsValidStatus reports whether s names a real order status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another.
func CanTransition(from, to Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status permits no further transitions.
func IsTerminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Item is a product reference inside an order with its price snapshotted
// at order time. Later catalog changes never reach back into placed
// orders.
type Item struct {
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"` // Price in cents at order time
	Image     string `json:"image"`
}

// Order represents a placed order. Orders are append-only: they are never
// deleted, and after creation only the status mutates, via allowed
// transitions.
type Order struct {
	ID              uint      `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	Items           []Item    `json:"items"`
	TotalAmount     int64     `json:"total_amount"` // Sum of item prices in cents
	OrderDate       time.Time `json:"order_date"`
	Status          Status    `json:"status"`
	PaymentMethod   string    `json:"payment_method"`
	DeliveryAddress string    `json:"delivery_address"`
}

// Stats are the aggregate order statistics shown on the admin dashboard.
// They are derived on demand from the order collection, never stored.
type Stats struct {
	Total        int            `json:"total"`
	ByStatus     map[Status]int `json:"by_status"`
	TotalRevenue int64          `json:"total_revenue"` // Sum of total_amount in cents
}
