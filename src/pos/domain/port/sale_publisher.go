package port

import (
	"context"

	"pos/src/pos/domain/entity"
)

// SalePublisher puerto de eventos salientes de ventas finalizadas
// La publicación nunca forma parte de la atomicidad del commit:
// un fallo se loguea y la venta sigue siendo válida
type SalePublisher interface {
	// PublishSaleCompleted publica el evento de venta finalizada
	PublishSaleCompleted(ctx context.Context, sale *entity.Sale) error

	// Close cierra el publisher
	Close() error
}
