// internal/domain/catalog/entity.go
package catalog

// Product represents an item of the storefront catalog. Products are
// reference data: loaded once at startup and never mutated afterwards.
type Product struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"` // Price in cents
	Image string `json:"image"`
}

// Category names the storefront sections a user can browse.
type Category string

const (
	CategoryAll      Category = "All"
	CategoryTrending Category = "Trending Now"
	CategoryNew      Category = "New"
	CategoryFashion  Category = "Fashion"
	CategoryMens     Category = "Mens"
	CategoryWomens   Category = "Womens"
	CategorySale     Category = "Sale"
)

// Categories lists the sections in display order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryTrending,
		CategoryNew,
		CategoryFashion,
		CategoryMens,
		CategoryWomens,
		CategorySale,
	}
}
