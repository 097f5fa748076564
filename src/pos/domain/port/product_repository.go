package port

import (
	"context"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository contrato de persistencia del catálogo de productos
// Restock muta stock con la misma disciplina atómica condicional que la venta:
// ningún camino de stock hace "leer, calcular, escribir sin condición"
type ProductRepository interface {
	// Create persiste un producto nuevo
	Create(ctx context.Context, product *entity.Product) error

	// ListByTenant retorna el catálogo completo de un tenant
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Product, error)

	// Restock incrementa stock atómicamente y retorna el producto actualizado
	Restock(ctx context.Context, tenantID string, productID uuid.UUID, quantity int) (*entity.Product, error)
}
