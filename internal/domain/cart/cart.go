// internal/domain/cart/cart.go
package cart

import (
	"errors"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// ErrItemNotFound is returned when an index references no cart line.
var ErrItemNotFound = errors.New("item not found in cart")

// LineItem is one unit of a product with a chosen size and color. Two
// identical variants are kept as two separate lines; the cart never
// merges entries.
type LineItem struct {
	Product catalog.Product `json:"product"`
	Size    string          `json:"selected_size"`
	Color   string          `json:"selected_color"`
	AddedAt time.Time       `json:"added_at"`
}

// Cart is the ordered shopping-cart aggregate. Insertion order is the
// display order. The cart lives in memory for the duration of a session;
// it is owned by the session orchestrator and mutated only by the event
// currently being handled.
type Cart struct {
	items []LineItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add appends a new line item. Size and color must already be resolved by
// the caller (the product screen preselects a default variant), so Add
// itself cannot fail.
func (c *Cart) Add(product catalog.Product, size, color string) {
	c.items = append(c.items, LineItem{
		Product: product,
		Size:    size,
		Color:   color,
		AddedAt: time.Now().UTC(),
	})
}

// RemoveAt deletes the line at the given index. Removal is index-based:
// lines after the removed one shift down by one, preserving their
// relative order.
func (c *Cart) RemoveAt(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrItemNotFound
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Items returns the cart lines in display order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total returns the sum of all line-item prices in cents. An empty cart
// totals zero.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Product.Price
	}
	return total
}

// Clear empties the cart. Called after a completed checkout.
func (c *Cart) Clear() {
	c.items = nil
}
