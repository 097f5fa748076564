package port

import (
	"context"

	"pos/src/pos/domain/entity"
)

// EmployeeRepository contrato de persistencia de empleados
type EmployeeRepository interface {
	// Create persiste un empleado (email ya normalizado por la entidad)
	Create(ctx context.Context, employee *entity.Employee) error

	// ListByTenant retorna los empleados de un tenant
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Employee, error)
}
