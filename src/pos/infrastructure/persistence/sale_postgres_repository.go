package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
// FinalizeSale es el único camino de escritura de stock por venta:
// decremento condicional por renglón + insert de la venta, todo en una
// transacción
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{db: db}
}

// FinalizeSale commitea la venta con descuento de stock atómico
// El UPDATE condicional (stock >= cantidad) relee el stock autoritativo bajo
// el aislamiento de la transacción: el perdedor de una carrera concurrente
// afecta 0 filas y la transacción entera se revierte, nunca hay oversell ni
// aplicación parcial
func (r *SalePostgresRepository) FinalizeSale(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar la venta (aggregate root)
	// Id pregenerado + ON CONFLICT DO NOTHING: un retry del caller con la
	// misma venta no puede duplicar el registro ni el descuento de stock
	querySale := `
		INSERT INTO sales (
			id, tenant_id, subtotal, tax, total,
			payment_type, amount_tendered, change_due,
			operator_id, operator_email, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (id) DO NOTHING
	`

	res, err := tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.TenantID,
		sale.Subtotal,
		sale.Tax,
		sale.Total,
		string(sale.PaymentType),
		sale.AmountTendered, // NULL para Card
		sale.ChangeDue,      // NULL para Card
		sale.OperatorID,
		sale.OperatorEmail,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading insert result: %w", err)
	}
	if inserted == 0 {
		// La venta ya fue commiteada por un intento anterior con el mismo id
		return nil
	}

	// 2. Descontar stock condicionalmente por cada renglón
	queryStock := `
		UPDATE products
		SET stock = stock - $1
		WHERE tenant_id = $2 AND id = $3 AND stock >= $1
	`

	for _, item := range sale.Items {
		res, err := tx.ExecContext(ctx, queryStock, item.Quantity, sale.TenantID, item.ProductID)
		if err != nil {
			return fmt.Errorf("error decrementing stock for %s: %w", item.ProductName, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("error reading stock update result: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w for product %s (requested %d)",
				entity.ErrInsufficientStock, item.ProductName, item.Quantity)
		}
	}

	// 3. Insertar los renglones de la venta
	queryItem := `
		INSERT INTO sale_items (
			id, sale_id, product_id, product_name, category,
			quantity, unit_price, subtotal
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ID,
			item.SaleID,
			item.ProductID,
			item.ProductName,
			item.Category,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("error creating sale_item for %s: %w", item.ProductName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// ListByTenant retorna todas las ventas de un tenant CON sus renglones
func (r *SalePostgresRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Sale, error) {
	querySales := `
		SELECT
			id, tenant_id, subtotal, tax, total,
			payment_type, amount_tendered, change_due,
			operator_id, operator_email, created_at
		FROM sales
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, querySales, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale

	for rows.Next() {
		sale := &entity.Sale{}
		var paymentType string
		err := rows.Scan(
			&sale.ID,
			&sale.TenantID,
			&sale.Subtotal,
			&sale.Tax,
			&sale.Total,
			&paymentType,
			&sale.AmountTendered,
			&sale.ChangeDue,
			&sale.OperatorID,
			&sale.OperatorEmail,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sale.PaymentType = entity.PaymentType(paymentType)
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	// Cargar renglones por venta (N+1, simple y suficiente para el historial)
	queryItems := `
		SELECT
			id, sale_id, product_id, product_name, category,
			quantity, unit_price, subtotal
		FROM sale_items
		WHERE sale_id = $1
	`

	for _, sale := range sales {
		itemRows, err := r.db.QueryContext(ctx, queryItems, sale.ID)
		if err != nil {
			return nil, fmt.Errorf("error querying sale_items: %w", err)
		}

		var items []entity.SaleItem

		for itemRows.Next() {
			item := entity.SaleItem{}
			err := itemRows.Scan(
				&item.ID,
				&item.SaleID,
				&item.ProductID,
				&item.ProductName,
				&item.Category,
				&item.Quantity,
				&item.UnitPrice,
				&item.Subtotal,
			)
			if err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("error scanning sale_item: %w", err)
			}
			items = append(items, item)
		}

		itemRows.Close()

		if err = itemRows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating sale_items: %w", err)
		}

		sale.Items = items
	}

	return sales, nil
}
