// internal/domain/catalog/service.go
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed products.json
var productsJSON []byte

const trendingSize = 6

// saleThreshold is the price (in cents) below which a product counts as on sale.
const saleThreshold = 5000

// categoryKeywords drives the title-keyword categories. Titles are matched
// case-insensitively against each keyword as a substring.
var categoryKeywords = map[Category][]string{
	CategoryFashion: {"shirt", "jacket", "sweater"},
	CategoryMens:    {"jacket", "coat", "jeans"},
	CategoryWomens:  {"sweater", "shirt"},
}

// Service serves the immutable product catalog and answers filter queries.
type Service struct {
	products []Product
	byID     map[uint]Product
}

// NewService loads the embedded catalog. Product records are validated at
// the boundary so the rest of the system never sees a malformed product.
func NewService() (*Service, error) {
	var payload struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(productsJSON, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse product catalog: %w", err)
	}

	byID := make(map[uint]Product, len(payload.Products))
	for _, p := range payload.Products {
		if p.ID == 0 {
			return nil, fmt.Errorf("product %q has no identifier", p.Title)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("product %d has no title", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price %d", p.ID, p.Price)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product identifier %d", p.ID)
		}
		byID[p.ID] = p
	}

	return &Service{
		products: payload.Products,
		byID:     byID,
	}, nil
}

// Products returns the full catalog in catalog order.
func (s *Service) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given identifier.
func (s *Service) Get(id uint) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Filter returns the products matching the search query, or the active
// category when the query is blank. A non-blank query wins over the
// category: the mobile UI searches across the whole catalog regardless of
// the selected section. An unrecognized category falls back to the full
// catalog rather than failing.
func (s *Service) Filter(query string, category Category) []Product {
	if q := strings.TrimSpace(query); q != "" {
		return s.filterByQuery(q)
	}

	switch category {
	case CategoryTrending:
		return s.slice(0, trendingSize)
	case CategoryNew:
		start := len(s.products) - trendingSize
		if start < 0 {
			start = 0
		}
		return s.slice(start, len(s.products))
	case CategoryFashion, CategoryMens, CategoryWomens:
		return s.filterByKeywords(categoryKeywords[category])
	case CategorySale:
		return s.filterBy(func(p Product) bool { return p.Price < saleThreshold })
	default:
		// CategoryAll and anything unrecognized: full catalog.
		return s.Products()
	}
}

func (s *Service) filterByQuery(query string) []Product {
	q := strings.ToLower(query)
	return s.filterBy(func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Title), q)
	})
}

func (s *Service) filterByKeywords(keywords []string) []Product {
	return s.filterBy(func(p Product) bool {
		title := strings.ToLower(p.Title)
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				return true
			}
		}
		return false
	})
}

func (s *Service) filterBy(match func(Product) bool) []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) slice(start, end int) []Product {
	if end > len(s.products) {
		end = len(s.products)
	}
	if start > end {
		start = end
	}
	out := make([]Product, end-start)
	copy(out, s.products[start:end])
	return out
}
