// internal/domain/order/repository.go
package order

import (
	"sync"
	"time"
)

// Repository is an in-process order collection. It stands in for the
// remote order data service a production deployment would use; the
// interface it exposes (List, Create, UpdateStatus) is what such a
// service would offer. Admin sessions and checkout reach it concurrently,
// so it guards its state with a lock.
type Repository struct {
	mu     sync.RWMutex
	orders []*Order
	nextID uint
}

// NewRepository creates an order repository seeded with sample orders so
// the admin dashboard has data in development.
func NewRepository() *Repository {
	r := &Repository{nextID: 1001}
	for _, o := range sampleOrders() {
		r.Create(o)
	}
	return r
}

// List returns all orders in insertion order.
func (r *Repository) List() []*Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Order, 0, len(r.orders))
	for _, o := range r.orders {
		c := *o
		out = append(out, &c)
	}
	return out
}

// Get returns the order with the given identifier.
func (r *Repository) Get(id uint) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o := r.find(id)
	if o == nil {
		return nil, ErrNotFound
	}
	c := *o
	return &c, nil
}

// Create assigns the next sequential identifier and appends the order.
func (r *Repository) Create(o *Order) *Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *o
	stored.ID = r.nextID
	r.nextID++
	if stored.Status == "" {
		stored.Status = StatusPending
	}
	r.orders = append(r.orders, &stored)

	c := stored
	return &c
}

// UpdateStatus applies a status transition. Disallowed transitions,
// including any attempt out of a terminal status, leave the order
// unchanged and report ErrInvalidTransition.
func (r *Repository) UpdateStatus(id uint, status Status) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := r.find(id)
	if o == nil {
		return nil, ErrNotFound
	}
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if !CanTransition(o.Status, status) {
		return nil, ErrInvalidTransition
	}

	o.Status = status
	c := *o
	return &c, nil
}

func (r *Repository) find(id uint) *Order {
	for _, o := range r.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// sampleOrders mirrors the fixture data the admin view ships with; a real
// deployment would start empty and fill from checkout.
func sampleOrders() []*Order {
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	return []*Order{
		{
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			Items: []Item{
				{ProductID: 1, Title: "Jacket", Price: 4999, Image: "https://res.cloudinary.com/dlc5c1ycl/image/upload/v1710567613/cwlk21f74nd9iamrlzkh.png"},
				{ProductID: 2, Title: "Jeans", Price: 3999, Image: "https://res.cloudinary.com/dlc5c1ycl/image/upload/v1710567612/qichw3wrcioebkvzudib.png"},
			},
			TotalAmount:     8998,
			OrderDate:       date("2025-01-10"),
			Status:          StatusPending,
			PaymentMethod:   "Cash on Delivery",
			DeliveryAddress: "123 Main St, City, State 12345",
		},
		{
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			Items: []Item{
				{ProductID: 3, Title: "Winter Coat", Price: 9999, Image: "https://res.cloudinary.com/dlc5c1ycl/image/upload/v1710567612/smf81ubnfjennk9qbjm4.png"},
			},
			TotalAmount:     9999,
			OrderDate:       date("2025-01-09"),
			Status:          StatusProcessing,
			PaymentMethod:   "Cash on Delivery",
			DeliveryAddress: "456 Oak Ave, City, State 67890",
		},
		{
			CustomerName:  "Mike Johnson",
			CustomerEmail: "mike@example.com",
			Items: []Item{
				{ProductID: 5, Title: "Winter Shirts", Price: 5999, Image: "https://res.cloudinary.com/dlc5c1ycl/image/upload/v1710567612/cvafl35dv9wzisdsgtd6.png"},
				{ProductID: 6, Title: "Shirts With Jacket", Price: 14999, Image: "https://res.cloudinary.com/dlc5c1ycl/image/upload/v1710567613/cwlk21f74nd9iamrlzkh.png"},
			},
			TotalAmount:     20998,
			OrderDate:       date("2025-01-08"),
			Status:          StatusShipped,
			PaymentMethod:   "Cash on Delivery",
			DeliveryAddress: "789 Pine St, City, State 54321",
		},
		{
			CustomerName:  "Sarah Wilson",
			CustomerEmail: "sarah@example.com",
			Items: []Item{
				{ProductID: 4, Title: "Acrylic Sweater", Price: 2999, Image: "https://res.cloudinary.com/dlc5c1ycl/image/upload/v1710567612/vy2q98s8ucsywwxjx2cf.png"},
			},
			TotalAmount:     2999,
			OrderDate:       date("2025-01-07"),
			Status:          StatusDelivered,
			PaymentMethod:   "Cash on Delivery",
			DeliveryAddress: "321 Elm St, City, State 98765",
		},
	}
}
