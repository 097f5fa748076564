package usecase

import (
	"pos/src/pos/application/response"
	"pos/src/pos/domain/port"
)

// ListProductsUseCase caso de uso para listar el catálogo vivo del tenant
// Lee de la vista sincronizada, no de la base: los consumidores ven siempre
// el último snapshot completo
type ListProductsUseCase struct {
	catalog port.CatalogView
}

// NewListProductsUseCase crea una nueva instancia
func NewListProductsUseCase(catalog port.CatalogView) *ListProductsUseCase {
	return &ListProductsUseCase{catalog: catalog}
}

// Execute lista los productos con el flag de stock bajo según el umbral del tenant
func (uc *ListProductsUseCase) Execute(tenantID string) []*response.ProductListItem {
	products := uc.catalog.Products(tenantID)
	threshold := uc.catalog.Settings(tenantID).LowStockThreshold

	items := make([]*response.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, &response.ProductListItem{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			Stock:       p.Stock,
			Image:       p.Image,
			Description: p.Description,
			Barcode:     p.Barcode,
			LowStock:    p.IsLowStock(threshold),
			CreatedAt:   p.CreatedAt,
		})
	}
	return items
}
