package port

import "context"

// TenantRepository lecturas para resolver el scope de tenant de un operador
// Dueños y empleados se autentican igual pero viven en particiones distintas;
// el email normalizado es la única referencia cruzada para empleados
type TenantRepository interface {
	// GetBusinessName retorna el nombre de negocio del registro de dueño
	// keyed por el id del operador; found=false si no existe el registro
	// Un registro sin nombre de negocio NO acredita como dueño
	GetBusinessName(ctx context.Context, operatorID string) (name string, found bool, err error)

	// FindTenantByEmployeeEmail busca tenant-wide un empleado por email
	// ya normalizado y retorna el id del tenant que lo provisionó
	FindTenantByEmployeeEmail(ctx context.Context, email string) (tenantID string, found bool, err error)
}
