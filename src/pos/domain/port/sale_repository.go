package port

import (
	"context"

	"pos/src/pos/domain/entity"
)

// SaleRepository contrato de persistencia de ventas
type SaleRepository interface {
	// FinalizeSale commitea la venta y el descuento de stock de cada renglón
	// en una sola transacción atómica: o aterrizan todos los writes o ninguno
	// Lee el stock autoritativo actual dentro de la transacción, no el snapshot
	// del carrito; si un descuento dejaría stock negativo la transacción falla
	// completa con entity.ErrInsufficientStock en la cadena de error
	FinalizeSale(ctx context.Context, sale *entity.Sale) error

	// ListByTenant retorna las ventas de un tenant, más recientes primero
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Sale, error)
}
