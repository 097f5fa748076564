package usecase

import (
	"context"
	"fmt"
	"log"

	"pos/src/pos/application/request"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// RegisterEmployeeUseCase caso de uso para provisionar empleados
// El email se normaliza acá, al momento de escribir, con la misma
// normalización que usa la resolución de tenant al leer: si esas dos
// divergen, la resolución del empleado falla en silencio
type RegisterEmployeeUseCase struct {
	employeeRepo port.EmployeeRepository
	catalog      port.CatalogView
}

// NewRegisterEmployeeUseCase crea una nueva instancia del caso de uso
func NewRegisterEmployeeUseCase(employeeRepo port.EmployeeRepository, catalog port.CatalogView) *RegisterEmployeeUseCase {
	return &RegisterEmployeeUseCase{employeeRepo: employeeRepo, catalog: catalog}
}

// Execute provisiona el empleado bajo el tenant del operador
func (uc *RegisterEmployeeUseCase) Execute(ctx context.Context, tenantID, operatorID string, req *request.RegisterEmployeeRequest) (*entity.Employee, error) {
	employee, err := entity.NewEmployee(tenantID, req.Name, req.Email, req.Role, operatorID)
	if err != nil {
		return nil, err
	}

	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	log.Printf("👤 Empleado provisionado: %s (%s) - Tenant: %s", employee.Name, employee.Email, tenantID)
	uc.catalog.Invalidate(tenantID, "employees")
	return employee, nil
}
