package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pos/src/pos/application/request"
	"pos/src/pos/application/response"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/shared/infrastructure/metrics"
)

// CheckoutUseCase el núcleo transaccional: convierte el carrito de la sesión
// en una venta durable con descuento de stock atómico y consistente
// Estados: Idle → Validating → Committing → {Committed | Failed}
type CheckoutUseCase struct {
	carts     *CartService
	catalog   port.CatalogView
	saleRepo  port.SaleRepository
	publisher port.SalePublisher // opcional
}

// NewCheckoutUseCase crea una nueva instancia del caso de uso
func NewCheckoutUseCase(
	carts *CartService,
	catalog port.CatalogView,
	saleRepo port.SaleRepository,
	publisher port.SalePublisher,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:     carts,
		catalog:   catalog,
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute finaliza el carrito como venta
// El repositorio relee el stock autoritativo de cada producto dentro de la
// transacción: eso cierra la ventana entre "carrito armado" y "venta
// commiteada" en la que otra sesión concurrente pudo vender las mismas
// unidades. Si la transacción falla (carrera de stock o conectividad) no hay
// mutación parcial visible y el carrito NO se vacía; el engine no reintenta,
// la política de retry es del caller
func (uc *CheckoutUseCase) Execute(
	ctx context.Context,
	tenantID string,
	operatorID string,
	operatorEmail string,
	sessionID string,
	req *request.CheckoutRequest,
) (*response.CheckoutResponse, error) {
	// ========================================================================
	// PASO 1: VALIDATING
	// ========================================================================
	if tenantID == "" || operatorID == "" {
		return nil, entity.ErrNotAuthorized
	}

	paymentType := entity.PaymentType(req.PaymentType)
	if !paymentType.Valid() {
		return nil, entity.ErrInvalidPaymentType
	}

	cartItems := uc.carts.Snapshot(ctx, tenantID, sessionID)
	if len(cartItems) == 0 {
		return nil, entity.ErrEmptyCart
	}

	settings := uc.catalog.Settings(tenantID)
	totals := ComputeTotals(cartItems, settings.TaxRate)

	// ========================================================================
	// PASO 2: CONSTRUIR LA VENTA INMUTABLE
	// El id se genera acá, antes de la transacción, para intención at-most-once
	// ========================================================================
	saleItems := make([]entity.SaleItem, 0, len(cartItems))
	for _, item := range cartItems {
		saleItem, err := entity.NewSaleItem(item)
		if err != nil {
			return nil, fmt.Errorf("error creating sale item for %s: %w", item.Name, err)
		}
		saleItems = append(saleItems, *saleItem)
	}

	sale, err := entity.NewSale(
		tenantID,
		operatorID,
		operatorEmail,
		saleItems,
		totals.Subtotal,
		totals.Tax,
		totals.Total,
		paymentType,
		req.AmountTendered,
	)
	if err != nil {
		if errors.Is(err, entity.ErrInsufficientTender) {
			metrics.SaleFailures.WithLabelValues("insufficient_tender").Inc()
		}
		return nil, err
	}

	// ========================================================================
	// PASO 3: COMMITTING — una sola transacción atómica
	// Todos los descuentos de stock más el write de la venta aterrizan juntos
	// o no aterriza ninguno; la aplicación parcial es estructuralmente imposible
	// ========================================================================
	log.Printf("🛒 Finalizando venta %s - Tenant: %s, Items: %d, Total: %s",
		sale.ID, tenantID, sale.TotalItems(), sale.Total)

	if err := uc.saleRepo.FinalizeSale(ctx, sale); err != nil {
		if errors.Is(err, entity.ErrInsufficientStock) {
			// Carrera de stock perdida contra otra sesión concurrente:
			// el perdedor observa un valor pre-descuento consistente y falla limpio
			log.Printf("❌ Venta %s perdió la carrera de stock: %v", sale.ID, err)
			metrics.StockConflicts.Inc()
			metrics.SaleFailures.WithLabelValues("stock_conflict").Inc()
		} else {
			log.Printf("❌ Falla transaccional en venta %s: %v", sale.ID, err)
			metrics.SaleFailures.WithLabelValues("transaction").Inc()
		}
		// El carrito queda intacto para que el operador pueda reintentar
		return nil, fmt.Errorf("%w: %v", entity.ErrSaleFailed, err)
	}

	// ========================================================================
	// PASO 4: COMMITTED — vaciar carrito y publicar evento
	// ========================================================================
	uc.carts.ClearCommitted(ctx, tenantID, sessionID)
	metrics.SalesFinalized.Inc()
	log.Printf("✅ Venta commiteada: ID=%s, Total=%s, Pago=%s", sale.ID, sale.Total, sale.PaymentType)

	if uc.publisher != nil {
		// Fuera de la atomicidad del commit: un fallo acá no invalida la venta
		if err := uc.publisher.PublishSaleCompleted(ctx, sale); err != nil {
			log.Printf("⚠️  No se pudo publicar el evento de venta %s: %v", sale.ID, err)
		}
	}

	return buildCheckoutResponse(sale, settings.Currency), nil
}

func buildCheckoutResponse(sale *entity.Sale, currency string) *response.CheckoutResponse {
	items := make([]response.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, response.SaleItemResponse{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Category:    item.Category,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return &response.CheckoutResponse{
		SaleID:         sale.ID,
		SaleNumber:     sale.ID.String(),
		Items:          items,
		TotalItems:     sale.TotalItems(),
		Subtotal:       sale.Subtotal,
		Tax:            sale.Tax,
		Total:          sale.Total,
		PaymentType:    string(sale.PaymentType),
		AmountTendered: sale.AmountTendered,
		ChangeDue:      sale.ChangeDue,
		Currency:       currency,
		OperatorEmail:  sale.OperatorEmail,
		CreatedAt:      sale.CreatedAt,
	}
}
