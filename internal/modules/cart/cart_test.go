package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flipkartmini.com/app/internal/modules/catalog"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{
		ID:     id,
		Name:   "Product " + id,
		Price:  price,
		Images: []string{"https://img.example/" + id + ".jpg"},
	}
}

func TestAddNewProductCreatesSingleLine(t *testing.T) {
	var c Cart

	c.Add(product("p9", 100), 3)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "p9", c.Items[0].ProductID)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 100.0, c.Items[0].Price)
	assert.Equal(t, "https://img.example/p9.jpg", c.Items[0].Image)
	assert.Equal(t, 300.0, c.Total())
}

func TestAddExistingProductMergesQuantity(t *testing.T) {
	var c Cart
	c.Add(product("p1", 500), 2)
	c.Add(product("p2", 50), 1)

	c.Add(product("p1", 500), 4)

	require.Len(t, c.Items, 2, "no duplicate line for the same product")
	assert.Equal(t, 6, c.Items[0].Quantity)
	assert.Equal(t, "p1", c.Items[0].ProductID)
}

func TestAddClampsQuantityToOne(t *testing.T) {
	var c Cart
	c.Add(product("p1", 10), 0)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestUpdateQtyNeverDropsBelowOne(t *testing.T) {
	var c Cart
	c.Add(product("p1", 500), 2)

	c.UpdateQty(0, -1)
	assert.Equal(t, 1, c.Items[0].Quantity)

	// decrementing at 1 clamps, it does not remove
	c.UpdateQty(0, -1)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestUpdateQtyIgnoresOutOfRange(t *testing.T) {
	var c Cart
	c.Add(product("p1", 10), 1)

	c.UpdateQty(-1, 1)
	c.UpdateQty(5, 1)

	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemovePreservesOrder(t *testing.T) {
	var c Cart
	c.Add(product("a", 1), 1)
	c.Add(product("b", 2), 1)
	c.Add(product("c", 3), 1)

	c.Remove(1)

	require.Len(t, c.Items, 2)
	assert.Equal(t, "a", c.Items[0].ProductID)
	assert.Equal(t, "c", c.Items[1].ProductID)

	c.Remove(9)
	assert.Len(t, c.Items, 2, "out-of-range remove is a no-op")
}

func TestTotalIsRecomputed(t *testing.T) {
	var c Cart
	assert.Equal(t, 0.0, c.Total())

	c.Add(product("p1", 500), 2)
	assert.Equal(t, 1000.0, c.Total())

	c.UpdateQty(0, 1)
	assert.Equal(t, 1500.0, c.Total())

	c.Add(product("p2", 99.5), 2)
	assert.Equal(t, 1699.0, c.Total())

	c.Remove(0)
	assert.Equal(t, 199.0, c.Total())
}

func TestSeedIfEmpty(t *testing.T) {
	var c Cart

	assert.False(t, SeedIfEmpty(&c, false), "seeding is opt-in")
	assert.True(t, c.IsEmpty())

	require.True(t, SeedIfEmpty(&c, true))
	require.Len(t, c.Items, 2)
	assert.Equal(t, "demo1", c.Items[0].ProductID)
	assert.Equal(t, 2, c.Items[1].Quantity)

	// a non-empty cart is never reseeded
	assert.False(t, SeedIfEmpty(&c, true))
}
