package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/pos/domain/port"
)

// TenantPostgresRepository implementa TenantRepository usando PostgreSQL
// Dueños viven en businesses (keyed por su propio id de autenticación);
// empleados viven en employees bajo el tenant que los provisionó
type TenantPostgresRepository struct {
	db *sql.DB
}

// NewTenantPostgresRepository crea una nueva instancia del repositorio
func NewTenantPostgresRepository(db *sql.DB) port.TenantRepository {
	return &TenantPostgresRepository{db: db}
}

// GetBusinessName retorna el nombre de negocio del registro de dueño
func (r *TenantPostgresRepository) GetBusinessName(ctx context.Context, operatorID string) (string, bool, error) {
	query := `SELECT COALESCE(business_name, '') FROM businesses WHERE id = $1`

	var name string
	err := r.db.QueryRowContext(ctx, query, operatorID).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error querying business: %w", err)
	}
	return name, true, nil
}

// FindTenantByEmployeeEmail busca tenant-wide un empleado por email normalizado
// Ordenado por created_at para que, ante emails duplicados entre tenants,
// gane determinísticamente el registro provisionado primero
func (r *TenantPostgresRepository) FindTenantByEmployeeEmail(ctx context.Context, email string) (string, bool, error) {
	query := `
		SELECT tenant_id
		FROM employees
		WHERE email = $1
		ORDER BY created_at
		LIMIT 1
	`

	var tenantID string
	err := r.db.QueryRowContext(ctx, query, email).Scan(&tenantID)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error querying employees: %w", err)
	}
	return tenantID, true, nil
}
