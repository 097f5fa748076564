package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemResponse un item del carrito en la respuesta
type CartItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// CartResponse estado actual del carrito de la sesión
type CartResponse struct {
	SessionID  string             `json:"session_id"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
}
