package usecase

import (
	"context"
	"fmt"
	"log"

	"pos/src/pos/application/request"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// AddProductUseCase caso de uso para crear un producto del catálogo
type AddProductUseCase struct {
	productRepo port.ProductRepository
	catalog     port.CatalogView
}

// NewAddProductUseCase crea una nueva instancia del caso de uso
func NewAddProductUseCase(productRepo port.ProductRepository, catalog port.CatalogView) *AddProductUseCase {
	return &AddProductUseCase{productRepo: productRepo, catalog: catalog}
}

// Execute crea el producto con atribución de auditoría y refresca la vista
func (uc *AddProductUseCase) Execute(ctx context.Context, tenantID, operatorID, operatorEmail string, req *request.AddProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(
		tenantID,
		req.Name,
		req.Category,
		req.Price,
		req.Stock,
		req.Image,
		req.Description,
		req.Barcode,
		operatorID,
		operatorEmail,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	log.Printf("📦 Producto creado: %s (%s) - Tenant: %s", product.Name, product.ID, tenantID)
	uc.catalog.Invalidate(tenantID, "products")
	return product, nil
}
