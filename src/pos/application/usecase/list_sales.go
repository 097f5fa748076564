package usecase

import (
	"context"

	"pos/src/pos/application/response"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// ListSalesUseCase caso de uso para listar el historial de ventas
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute lista las ventas del tenant, más recientes primero
func (uc *ListSalesUseCase) Execute(ctx context.Context, tenantID string) ([]*response.SaleListItem, error) {
	sales, err := uc.saleRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return toSaleListItems(sales), nil
}

func toSaleListItems(sales []*entity.Sale) []*response.SaleListItem {
	items := make([]*response.SaleListItem, 0, len(sales))
	for _, s := range sales {
		items = append(items, &response.SaleListItem{
			ID:            s.ID,
			Subtotal:      s.Subtotal,
			Tax:           s.Tax,
			Total:         s.Total,
			PaymentType:   string(s.PaymentType),
			TotalItems:    s.TotalItems(),
			OperatorEmail: s.OperatorEmail,
			CreatedAt:     s.CreatedAt,
		})
	}
	return items
}
