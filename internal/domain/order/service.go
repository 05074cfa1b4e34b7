// internal/domain/order/service.go
package order

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// Service handles the order lifecycle: creation from a checked-out cart,
// user-confirmed status transitions and the derived admin projections.
type Service struct {
	repo *Repository
	log  *logrus.Logger
}

// NewService creates a new order service.
func NewService(repo *Repository, log *logrus.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateRequest carries the checkout details collected on the payment
// screen.
type CreateRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	PaymentMethod   string `json:"payment_method"`
	DeliveryAddress string `json:"delivery_address"`
}

// CreateFromCart places a new order from the cart lines, snapshotting
// titles and prices at order time. The new order starts pending.
func (s *Service) CreateFromCart(lines []cart.LineItem, req *CreateRequest) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]Item, 0, len(lines))
	var total int64
	for _, line := range lines {
		items = append(items, Item{
			ProductID: line.Product.ID,
			Title:     line.Product.Title,
			Price:     line.Product.Price,
			Image:     line.Product.Image,
		})
		total += line.Product.Price
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash on Delivery"
	}

	created := s.repo.Create(&Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		Items:           items,
		TotalAmount:     total,
		OrderDate:       time.Now().UTC(),
		Status:          StatusPending,
		PaymentMethod:   paymentMethod,
		DeliveryAddress: req.DeliveryAddress,
	})

	s.log.WithFields(logrus.Fields{
		"order_id":     created.ID,
		"total_amount": created.TotalAmount,
		"item_count":   len(created.Items),
	}).Info("Order placed")

	return created, nil
}

// Get returns a single order.
func (s *Service) Get(id uint) (*Order, error) {
	return s.repo.Get(id)
}

// UpdateStatus applies a user-confirmed status transition. Status changes
// are destructive for terminal states, so the contract is: mutate only
// after the explicit confirmation signal was received.
func (s *Service) UpdateStatus(id uint, status Status, confirmed bool) (*Order, error) {
	if !confirmed {
		return nil, ErrConfirmationRequired
	}

	updated, err := s.repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id": updated.ID,
		"status":   updated.Status,
	}).Info("Order status updated")

	return updated, nil
}

// ListByStatus is the pure status projection the admin view filters with:
// an order matches when its status equals the filter or the filter is
// "all". An empty filter means "all".
func (s *Service) ListByStatus(filter Status) []*Order {
	orders := s.repo.List()
	if filter == "" || filter == StatusAll {
		return orders
	}

	out := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == filter {
			out = append(out, o)
		}
	}
	return out
}

// GetStats recomputes the aggregate statistics from the order collection.
// Nothing is cached; derived numbers can never drift from the orders.
func (s *Service) GetStats() Stats {
	stats := Stats{
		ByStatus: map[Status]int{
			StatusPending:    0,
			StatusProcessing: 0,
			StatusShipped:    0,
			StatusDelivered:  0,
			StatusCancelled:  0,
		},
	}

	for _, o := range s.repo.List() {
		stats.Total++
		stats.ByStatus[o.Status]++
		stats.TotalRevenue += o.TotalAmount
	}

	return stats
}
