package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/google/uuid"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{db: db}
}

// Create persiste un producto nuevo
func (r *ProductPostgresRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, tenant_id, name, price, category, stock,
			image, description, barcode,
			created_by, created_by_email, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.TenantID,
		product.Name,
		product.Price,
		product.Category,
		product.Stock,
		product.Image,
		product.Description,
		product.Barcode,
		product.CreatedBy,
		product.CreatedByEmail,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}
	return nil
}

// ListByTenant retorna el catálogo completo del tenant
func (r *ProductPostgresRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Product, error) {
	query := `
		SELECT
			id, tenant_id, name, price, category, stock,
			image, description, barcode,
			created_by, created_by_email, created_at
		FROM products
		WHERE tenant_id = $1
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product

	for rows.Next() {
		p := &entity.Product{}
		err := rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.Name,
			&p.Price,
			&p.Category,
			&p.Stock,
			&p.Image,
			&p.Description,
			&p.Barcode,
			&p.CreatedBy,
			&p.CreatedByEmail,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Restock incrementa stock con un update atómico y retorna el producto
// actualizado; misma disciplina condicional que el descuento de venta
func (r *ProductPostgresRepository) Restock(ctx context.Context, tenantID string, productID uuid.UUID, quantity int) (*entity.Product, error) {
	query := `
		UPDATE products
		SET stock = stock + $1
		WHERE tenant_id = $2 AND id = $3
		RETURNING
			id, tenant_id, name, price, category, stock,
			image, description, barcode,
			created_by, created_by_email, created_at
	`

	p := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, quantity, tenantID, productID).Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&p.Price,
		&p.Category,
		&p.Stock,
		&p.Image,
		&p.Description,
		&p.Barcode,
		&p.CreatedBy,
		&p.CreatedByEmail,
		&p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error restocking product: %w", err)
	}
	return p, nil
}
