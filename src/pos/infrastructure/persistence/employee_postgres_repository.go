package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// EmployeePostgresRepository implementa EmployeeRepository usando PostgreSQL
type EmployeePostgresRepository struct {
	db *sql.DB
}

// NewEmployeePostgresRepository crea una nueva instancia del repositorio
func NewEmployeePostgresRepository(db *sql.DB) port.EmployeeRepository {
	return &EmployeePostgresRepository{db: db}
}

// Create persiste un empleado (email ya normalizado por la entidad)
func (r *EmployeePostgresRepository) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (
			id, tenant_id, name, email, role, created_by, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		employee.ID,
		employee.TenantID,
		employee.Name,
		employee.Email,
		employee.Role,
		employee.CreatedBy,
		employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating employee: %w", err)
	}
	return nil
}

// ListByTenant retorna los empleados del tenant
func (r *EmployeePostgresRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Employee, error) {
	query := `
		SELECT id, tenant_id, name, email, role, created_by, created_at
		FROM employees
		WHERE tenant_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee

	for rows.Next() {
		e := &entity.Employee{}
		err := rows.Scan(
			&e.ID,
			&e.TenantID,
			&e.Name,
			&e.Email,
			&e.Role,
			&e.CreatedBy,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}
