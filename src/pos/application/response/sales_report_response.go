package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportResponse reporte agregado de ventas para una fecha
type SalesReportResponse struct {
	Date        string          `json:"date"`
	SalesCount  int             `json:"sales_count"`
	CashCount   int             `json:"cash_count"`
	CardCount   int             `json:"card_count"`
	SubtotalSum decimal.Decimal `json:"subtotal_sum"`
	TaxSum      decimal.Decimal `json:"tax_sum"`
	TotalSum    decimal.Decimal `json:"total_sum"`
	FirstSaleAt *time.Time      `json:"first_sale_at,omitempty"`
	LastSaleAt  *time.Time      `json:"last_sale_at,omitempty"`
}
