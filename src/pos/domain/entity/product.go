package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un tenant
// El stock solo se muta vía la transacción atómica de venta o restock;
// no existe camino "leer, calcular, escribir" fuera de esa disciplina
type Product struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       string          `json:"tenant_id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category"`
	Stock          int             `json:"stock"`
	Image          string          `json:"image,omitempty"`
	Description    string          `json:"description,omitempty"`
	Barcode        string          `json:"barcode,omitempty"`
	CreatedBy      string          `json:"created_by"`
	CreatedByEmail string          `json:"created_by_email"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewProduct crea un nuevo producto con atribución de auditoría
func NewProduct(
	tenantID string,
	name string,
	category string,
	price decimal.Decimal,
	stock int,
	image string,
	description string,
	barcode string,
	createdBy string,
	createdByEmail string,
) (*Product, error) {
	if tenantID == "" {
		return nil, ErrTenantIDRequired
	}
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:             uuid.New(),
		TenantID:       tenantID,
		Name:           name,
		Price:          price,
		Category:       category,
		Stock:          stock,
		Image:          image,
		Description:    description,
		Barcode:        barcode,
		CreatedBy:      createdBy,
		CreatedByEmail: createdByEmail,
		CreatedAt:      time.Now(),
	}, nil
}

// IsLowStock indica si el producto está en o por debajo del umbral configurado
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock <= threshold
}
