package port

import (
	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
)

// CatalogView vista viva read-mostly del catálogo de un tenant
// Los consumidores siempre ven el snapshot completo anterior o el nuevo,
// nunca una actualización parcial
type CatalogView interface {
	// Product retorna el registro más recientemente sincronizado del producto
	Product(tenantID string, productID uuid.UUID) (*entity.Product, bool)

	// Products retorna el snapshot completo de productos del tenant
	Products(tenantID string) []*entity.Product

	// Employees retorna el snapshot completo de empleados del tenant
	Employees(tenantID string) []*entity.Employee

	// Settings retorna los settings sincronizados del tenant
	// (defaults si el tenant nunca persistió settings)
	Settings(tenantID string) entity.Settings

	// Invalidate fuerza una recarga de una colección tras un write local
	// collection: "products" | "employees" | "settings"
	Invalidate(tenantID string, collection string)
}
