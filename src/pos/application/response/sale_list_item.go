package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleListItem resumen de una venta para el historial
type SaleListItem struct {
	ID            uuid.UUID       `json:"id"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentType   string          `json:"payment_type"`
	TotalItems    int             `json:"total_items"`
	OperatorEmail string          `json:"operator_email"`
	CreatedAt     time.Time       `json:"created_at"`
}
