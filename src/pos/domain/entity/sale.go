package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType medio de pago de una venta POS
type PaymentType string

const (
	PaymentCash PaymentType = "Cash"
	PaymentCard PaymentType = "Card"
)

// Valid indica si el medio de pago es reconocido
func (pt PaymentType) Valid() bool {
	return pt == PaymentCash || pt == PaymentCard
}

// Sale representa una venta finalizada (Aggregate Root)
// Inmutable una vez creada: nunca se actualiza ni se borra desde este core
// El ID se genera antes de la transacción para que el write sea idempotente
// si se reintenta con el mismo id
type Sale struct {
	ID             uuid.UUID        `json:"id"`
	TenantID       string           `json:"tenant_id"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	Tax            decimal.Decimal  `json:"tax"`
	Total          decimal.Decimal  `json:"total"`
	PaymentType    PaymentType      `json:"payment_type"`
	AmountTendered *decimal.Decimal `json:"amount_tendered,omitempty"` // solo Cash
	ChangeDue      *decimal.Decimal `json:"change_due,omitempty"`      // solo Cash
	OperatorID     string           `json:"operator_id"`
	OperatorEmail  string           `json:"operator_email"`
	CreatedAt      time.Time        `json:"created_at"`
	Items          []SaleItem       `json:"items"`
}

// NewSale crea una venta inmutable a partir del snapshot del carrito y los totales
// Para Cash exige amount_tendered >= total (no se permiten ventas cortas de efectivo)
// y calcula el vuelto; para Card los campos de efectivo quedan indefinidos
func NewSale(
	tenantID string,
	operatorID string,
	operatorEmail string,
	items []SaleItem,
	subtotal decimal.Decimal,
	tax decimal.Decimal,
	total decimal.Decimal,
	paymentType PaymentType,
	amountTendered *decimal.Decimal,
) (*Sale, error) {
	if tenantID == "" {
		return nil, ErrTenantIDRequired
	}
	if len(items) == 0 {
		return nil, ErrSaleMustHaveItems
	}
	if !paymentType.Valid() {
		return nil, ErrInvalidPaymentType
	}

	sale := &Sale{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentType:   paymentType,
		OperatorID:    operatorID,
		OperatorEmail: operatorEmail,
		CreatedAt:     time.Now(),
	}

	if paymentType == PaymentCash {
		// Comparación decimal exacta: ningún float entra al camino del dinero
		if amountTendered == nil || amountTendered.LessThan(total) {
			return nil, ErrInsufficientTender
		}
		change := amountTendered.Sub(total)
		sale.AmountTendered = amountTendered
		sale.ChangeDue = &change
	}

	// Asignar sale_id a todos los items
	sale.Items = make([]SaleItem, len(items))
	for i, item := range items {
		item.SaleID = sale.ID
		sale.Items[i] = item
	}

	return sale, nil
}

// TotalItems retorna el número de renglones de la venta
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

// TotalQuantity retorna la suma de unidades vendidas
func (s *Sale) TotalQuantity() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}
