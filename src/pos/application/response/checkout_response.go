package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemResponse un renglón de la venta en la respuesta
type SaleItemResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CheckoutResponse venta finalizada, lista para imprimir ticket
type CheckoutResponse struct {
	SaleID         uuid.UUID          `json:"sale_id"`
	SaleNumber     string             `json:"sale_number"` // UUID como número de venta
	Items          []SaleItemResponse `json:"items"`
	TotalItems     int                `json:"total_items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	Tax            decimal.Decimal    `json:"tax"`
	Total          decimal.Decimal    `json:"total"`
	PaymentType    string             `json:"payment_type"`
	AmountTendered *decimal.Decimal   `json:"amount_tendered,omitempty"`
	ChangeDue      *decimal.Decimal   `json:"change_due,omitempty"`
	Currency       string             `json:"currency"`
	OperatorEmail  string             `json:"operator_email"`
	CreatedAt      time.Time          `json:"created_at"`
}
