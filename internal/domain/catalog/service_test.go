// internal/domain/catalog/service_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestNewService(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)
	require.NotNil(t, svc)

	assert.Len(t, svc.Products(), 12)
}

func TestService_Get(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	p, ok := svc.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Jacket", p.Title)
	assert.Equal(t, int64(4999), p.Price)

	_, ok = svc.Get(999)
	assert.False(t, ok)
}

func TestService_Filter_Categories(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	tests := []struct {
		name     string
		category Category
		wantIDs  []uint
	}{
		{
			name:     "all returns full catalog",
			category: CategoryAll,
			wantIDs:  []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
		{
			name:     "trending returns first six",
			category: CategoryTrending,
			wantIDs:  []uint{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "new returns last six",
			category: CategoryNew,
			wantIDs:  []uint{7, 8, 9, 10, 11, 12},
		},
		{
			name:     "fashion matches shirt jacket sweater",
			category: CategoryFashion,
			wantIDs:  []uint{1, 4, 5, 6, 7, 8, 9, 12},
		},
		{
			name:     "mens matches jacket coat jeans",
			category: CategoryMens,
			wantIDs:  []uint{1, 2, 3, 6, 7, 10, 11},
		},
		{
			name:     "womens matches sweater shirt",
			category: CategoryWomens,
			wantIDs:  []uint{4, 5, 6, 8, 9, 12},
		},
		{
			name:     "sale matches prices below fifty",
			category: CategorySale,
			wantIDs:  []uint{1, 2, 4, 8, 9, 12},
		},
		{
			name:     "unknown category falls back to full catalog",
			category: Category("Bogus"),
			wantIDs:  []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter("", tt.category)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestService_Filter_Query(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		category Category
		wantIDs  []uint
	}{
		{
			name:    "substring match is case insensitive",
			query:   "JACKET",
			wantIDs: []uint{1, 6, 7},
		},
		{
			name:     "query wins over category",
			query:    "coat",
			category: CategorySale,
			wantIDs:  []uint{3, 11},
		},
		{
			name:     "whitespace-only query falls back to category",
			query:    "   ",
			category: CategoryTrending,
			wantIDs:  []uint{1, 2, 3, 4, 5, 6},
		},
		{
			name:    "no match returns empty result",
			query:   "sneakers",
			wantIDs: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(tt.query, tt.category)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestService_ProductsReturnsCopy(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	first := svc.Products()
	first[0].Title = "mutated"

	again := svc.Products()
	assert.Equal(t, "Jacket", again[0].Title)
}
