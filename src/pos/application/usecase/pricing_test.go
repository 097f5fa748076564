package usecase

import (
	"testing"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cartItem(name, price string, quantity int) entity.CartItem {
	return entity.CartItem{
		ProductID: uuid.New(),
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  quantity,
	}
}

func TestComputeTotals(t *testing.T) {
	items := []entity.CartItem{
		cartItem("Cafe", "3.50", 2),
		cartItem("Sandwich", "4.75", 1),
	}

	totals := ComputeTotals(items, decimal.NewFromInt(16))

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("11.75")),
		"subtotal: %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("1.88")),
		"tax: %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("13.63")),
		"total: %s", totals.Total)
}

func TestComputeTotalsZeroRate(t *testing.T) {
	items := []entity.CartItem{cartItem("Pan", "1.25", 4)}

	totals := ComputeTotals(items, decimal.Zero)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.Equal(totals.Subtotal))
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, decimal.NewFromInt(16))

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

// Los montos con centavos no acumulan error binario: 0.10 diez veces es
// exactamente 1.00
func TestComputeTotalsNoBinaryDrift(t *testing.T) {
	totals := ComputeTotals([]entity.CartItem{cartItem("Caramelo", "0.10", 10)}, decimal.Zero)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("1.00")))
}
