package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSaleItems(t *testing.T) []SaleItem {
	t.Helper()
	item, err := NewSaleItem(CartItem{
		ProductID: uuid.New(),
		Name:      "Cafe",
		Category:  "Bebidas",
		UnitPrice: decimal.RequireFromString("3.50"),
		Quantity:  2,
	})
	require.NoError(t, err)
	return []SaleItem{*item}
}

func TestNewSaleCash(t *testing.T) {
	subtotal := decimal.RequireFromString("7.00")
	tax := decimal.RequireFromString("1.12")
	total := decimal.RequireFromString("8.12")

	t.Run("efectivo insuficiente se rechaza", func(t *testing.T) {
		tendered := decimal.RequireFromString("8.11")
		_, err := NewSale("tenant-1", "op-1", "op@shop.com", testSaleItems(t),
			subtotal, tax, total, PaymentCash, &tendered)
		assert.ErrorIs(t, err, ErrInsufficientTender)
	})

	t.Run("sin monto entregado se rechaza", func(t *testing.T) {
		_, err := NewSale("tenant-1", "op-1", "op@shop.com", testSaleItems(t),
			subtotal, tax, total, PaymentCash, nil)
		assert.ErrorIs(t, err, ErrInsufficientTender)
	})

	t.Run("monto exacto da vuelto cero", func(t *testing.T) {
		tendered := decimal.RequireFromString("8.12")
		sale, err := NewSale("tenant-1", "op-1", "op@shop.com", testSaleItems(t),
			subtotal, tax, total, PaymentCash, &tendered)
		require.NoError(t, err)
		require.NotNil(t, sale.ChangeDue)
		assert.True(t, sale.ChangeDue.IsZero())
	})

	t.Run("vuelto calculado con aritmetica decimal", func(t *testing.T) {
		tendered := decimal.RequireFromString("10.00")
		sale, err := NewSale("tenant-1", "op-1", "op@shop.com", testSaleItems(t),
			subtotal, tax, total, PaymentCash, &tendered)
		require.NoError(t, err)
		require.NotNil(t, sale.ChangeDue)
		assert.True(t, sale.ChangeDue.Equal(decimal.RequireFromString("1.88")))
	})
}

func TestNewSaleCard(t *testing.T) {
	subtotal := decimal.RequireFromString("7.00")
	tax := decimal.RequireFromString("1.12")
	total := decimal.RequireFromString("8.12")

	sale, err := NewSale("tenant-1", "op-1", "op@shop.com", testSaleItems(t),
		subtotal, tax, total, PaymentCard, nil)

	require.NoError(t, err)
	assert.Nil(t, sale.AmountTendered)
	assert.Nil(t, sale.ChangeDue)
}

func TestNewSaleValidation(t *testing.T) {
	subtotal := decimal.RequireFromString("7.00")
	tax := decimal.RequireFromString("1.12")
	total := decimal.RequireFromString("8.12")

	t.Run("sin items", func(t *testing.T) {
		_, err := NewSale("tenant-1", "op-1", "op@shop.com", nil,
			subtotal, tax, total, PaymentCard, nil)
		assert.ErrorIs(t, err, ErrSaleMustHaveItems)
	})

	t.Run("sin tenant", func(t *testing.T) {
		_, err := NewSale("", "op-1", "op@shop.com", testSaleItems(t),
			subtotal, tax, total, PaymentCard, nil)
		assert.ErrorIs(t, err, ErrTenantIDRequired)
	})

	t.Run("medio de pago desconocido", func(t *testing.T) {
		_, err := NewSale("tenant-1", "op-1", "op@shop.com", testSaleItems(t),
			subtotal, tax, total, PaymentType("Crypto"), nil)
		assert.ErrorIs(t, err, ErrInvalidPaymentType)
	})
}

func TestNewSaleAssignsItemSaleID(t *testing.T) {
	subtotal := decimal.RequireFromString("7.00")
	tax := decimal.RequireFromString("1.12")
	total := decimal.RequireFromString("8.12")

	sale, err := NewSale("tenant-1", "op-1", "op@shop.com", testSaleItems(t),
		subtotal, tax, total, PaymentCard, nil)

	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, sale.ID)
	for _, item := range sale.Items {
		assert.Equal(t, sale.ID, item.SaleID)
	}
	assert.Equal(t, 1, sale.TotalItems())
	assert.Equal(t, 2, sale.TotalQuantity())
}

func TestNewSaleItemValidation(t *testing.T) {
	t.Run("subtotal es precio por cantidad", func(t *testing.T) {
		item, err := NewSaleItem(CartItem{
			ProductID: uuid.New(),
			Name:      "Pan",
			UnitPrice: decimal.RequireFromString("1.25"),
			Quantity:  3,
		})
		require.NoError(t, err)
		assert.True(t, item.Subtotal.Equal(decimal.RequireFromString("3.75")))
	})

	t.Run("cantidad invalida", func(t *testing.T) {
		_, err := NewSaleItem(CartItem{
			ProductID: uuid.New(),
			Name:      "Pan",
			UnitPrice: decimal.RequireFromString("1.25"),
			Quantity:  0,
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}
