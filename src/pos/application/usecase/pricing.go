package usecase

import (
	"pos/src/pos/domain/entity"

	"github.com/shopspring/decimal"
)

// Totals totales calculados de un carrito
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals calcula subtotal, impuesto y total de los items del carrito
// Usa el precio snapshot de cada item tal como lo lleva el carrito
// Aritmética decimal de punta a punta: sin acumulación de error binario
// y sin redondeo en esta capa (el caller formatea para display)
func ComputeTotals(items []entity.CartItem, taxRatePercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
	total := subtotal.Add(tax)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}
