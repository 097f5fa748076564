package response

import "github.com/shopspring/decimal"

// TotalsResponse totales calculados del carrito
// Sin redondeo en esta capa: el caller formatea para display
type TotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Currency string          `json:"currency"`
}
