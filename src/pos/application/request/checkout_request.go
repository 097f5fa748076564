package request

import "github.com/shopspring/decimal"

// CheckoutRequest request para finalizar el carrito de la sesión como venta
// AmountTendered es obligatorio para Cash y se ignora para Card
type CheckoutRequest struct {
	PaymentType    string           `json:"payment_type" binding:"required,oneof=Cash Card"`
	AmountTendered *decimal.Decimal `json:"amount_tendered,omitempty"`
}
