package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(name string, price string, stock int) *Product {
	return &Product{
		ID:       uuid.New(),
		TenantID: "tenant-1",
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: "Bebidas",
		Stock:    stock,
	}
}

func TestCartAdd(t *testing.T) {
	t.Run("agrega item nuevo con cantidad 1 y snapshot de precio", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")
		product := testProduct("Cafe", "3.50", 10)

		changed := cart.Add(product)

		require.True(t, changed)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, product.ID, cart.Items[0].ProductID)
		assert.Equal(t, 1, cart.Items[0].Quantity)
		assert.True(t, cart.Items[0].UnitPrice.Equal(decimal.RequireFromString("3.50")))
	})

	t.Run("incrementa cantidad si el producto ya esta", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")
		product := testProduct("Cafe", "3.50", 10)

		cart.Add(product)
		cart.Add(product)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("no-op sin stock", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")

		assert.False(t, cart.Add(testProduct("Agotado", "1.00", 0)))
		assert.False(t, cart.Add(nil))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("tope silencioso en el stock actual", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")
		product := testProduct("Cafe", "3.50", 2)

		assert.True(t, cart.Add(product))
		assert.True(t, cart.Add(product))
		// Tercera unidad supera el stock: el carrito no cambia y no hay error
		assert.False(t, cart.Add(product))
		assert.Equal(t, 2, cart.Quantity(product.ID))
	})

	t.Run("cambio de precio entre agregados no muta el snapshot", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")
		product := testProduct("Cafe", "3.50", 10)

		cart.Add(product)
		product.Price = decimal.RequireFromString("4.00")
		cart.Add(product)

		assert.True(t, cart.Items[0].UnitPrice.Equal(decimal.RequireFromString("3.50")))
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("delta positivo dentro del stock", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")
		product := testProduct("Cafe", "3.50", 10)
		cart.Add(product)

		changed := cart.UpdateQuantity(product.ID, 3, product.Stock)

		require.True(t, changed)
		assert.Equal(t, 4, cart.Quantity(product.ID))
	})

	t.Run("delta que supera el stock se rechaza sin cambios", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")
		product := testProduct("Cafe", "3.50", 3)
		cart.Add(product)

		changed := cart.UpdateQuantity(product.ID, 5, product.Stock)

		assert.False(t, changed)
		assert.Equal(t, 1, cart.Quantity(product.ID))
	})

	t.Run("cantidad recortada a 0 elimina el item", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")
		product := testProduct("Cafe", "3.50", 10)
		cart.Add(product)

		changed := cart.UpdateQuantity(product.ID, -5, product.Stock)

		require.True(t, changed)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("producto ausente no cambia nada", func(t *testing.T) {
		cart := NewCart("tenant-1", "session-1")
		assert.False(t, cart.UpdateQuantity(uuid.New(), 1, 10))
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart("tenant-1", "session-1")
	cafe := testProduct("Cafe", "3.50", 10)
	pan := testProduct("Pan", "1.25", 5)
	cart.Add(cafe)
	cart.Add(pan)

	cart.Remove(cafe.ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, pan.ID, cart.Items[0].ProductID)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartCopyIsIndependent(t *testing.T) {
	cart := NewCart("tenant-1", "session-1")
	product := testProduct("Cafe", "3.50", 10)
	cart.Add(product)

	snapshot := cart.Copy()
	cart.UpdateQuantity(product.ID, 4, product.Stock)

	assert.Equal(t, 1, snapshot.Items[0].Quantity)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}
