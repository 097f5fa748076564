package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem un renglón inmutable dentro de una venta (Entity dentro del Aggregate)
// Copia nombre/precio/cantidad al momento de la venta, nunca referencia viva
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewSaleItem crea un renglón de venta a partir del snapshot del carrito
func NewSaleItem(item CartItem) (*SaleItem, error) {
	if item.Name == "" {
		return nil, ErrProductNameRequired
	}
	if item.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if item.UnitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	subtotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

	return &SaleItem{
		ID:          uuid.New(),
		ProductID:   item.ProductID,
		ProductName: item.Name,
		Category:    item.Category,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Subtotal:    subtotal,
	}, nil
}
