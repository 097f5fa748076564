package usecase

import (
	"context"
	"fmt"
	"log"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/google/uuid"
)

// RestockProductUseCase caso de uso para incremento administrativo de stock
// Pasa por la misma disciplina de update atómico condicional que la venta;
// acá no existe un camino "leer, calcular, escribir sin condición"
type RestockProductUseCase struct {
	productRepo port.ProductRepository
	catalog     port.CatalogView
}

// NewRestockProductUseCase crea una nueva instancia del caso de uso
func NewRestockProductUseCase(productRepo port.ProductRepository, catalog port.CatalogView) *RestockProductUseCase {
	return &RestockProductUseCase{productRepo: productRepo, catalog: catalog}
}

// Execute incrementa el stock del producto y refresca la vista
func (uc *RestockProductUseCase) Execute(ctx context.Context, tenantID string, productID uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity <= 0 {
		return nil, entity.ErrInvalidQuantity
	}

	product, err := uc.productRepo.Restock(ctx, tenantID, productID, quantity)
	if err != nil {
		return nil, fmt.Errorf("error restocking product %s: %w", productID, err)
	}

	log.Printf("📦 Restock: %s +%d → stock=%d", product.Name, quantity, product.Stock)
	uc.catalog.Invalidate(tenantID, "products")
	return product, nil
}
