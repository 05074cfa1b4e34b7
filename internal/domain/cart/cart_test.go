// internal/domain/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

var (
	jacket = catalog.Product{ID: 1, Title: "Jacket", Price: 4999}
	jeans  = catalog.Product{ID: 2, Title: "Jeans", Price: 3999}
)

func TestCart_Add(t *testing.T) {
	c := New()
	assert.True(t, c.IsEmpty())

	c.Add(jacket, "M", "Black")

	require.Equal(t, 1, c.Len())
	item := c.Items()[0]
	assert.Equal(t, jacket, item.Product)
	assert.Equal(t, "M", item.Size)
	assert.Equal(t, "Black", item.Color)
	assert.False(t, item.AddedAt.IsZero())
}

func TestCart_AddDoesNotMergeIdenticalVariants(t *testing.T) {
	c := New()
	c.Add(jacket, "M", "Black")
	c.Add(jacket, "M", "Black")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(9998), c.Total())
}

func TestCart_RemoveAt(t *testing.T) {
	c := New()
	c.Add(jacket, "M", "Black")
	c.Add(jeans, "L", "Blue")
	c.Add(jacket, "S", "Red")

	require.NoError(t, c.RemoveAt(1))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, "S", items[1].Size)
}

func TestCart_RemoveAtOutOfRange(t *testing.T) {
	c := New()
	c.Add(jacket, "M", "Black")

	assert.ErrorIs(t, c.RemoveAt(-1), ErrItemNotFound)
	assert.ErrorIs(t, c.RemoveAt(1), ErrItemNotFound)

	require.NoError(t, c.RemoveAt(0))
	assert.ErrorIs(t, c.RemoveAt(0), ErrItemNotFound)
}

func TestCart_RemoveAtSameIndexTwice(t *testing.T) {
	c := New()
	c.Add(jacket, "S", "Black")
	c.Add(jeans, "M", "Blue")
	c.Add(jacket, "L", "Red")

	// After the first removal the lines shift, so the same index now
	// names what was originally the second line.
	require.NoError(t, c.RemoveAt(0))
	require.NoError(t, c.RemoveAt(0))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].Size)
}

func TestCart_Total(t *testing.T) {
	c := New()
	assert.Equal(t, int64(0), c.Total())

	c.Add(jacket, "M", "Black")
	c.Add(jeans, "L", "Blue")
	assert.Equal(t, int64(8998), c.Total())
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(jacket, "M", "Black")
	c.Add(jeans, "L", "Blue")

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Total())
	assert.Empty(t, c.Items())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(jacket, "M", "Black")

	items := c.Items()
	items[0].Size = "XL"

	assert.Equal(t, "M", c.Items()[0].Size)
}
