package usecase

import (
	"context"
	"fmt"
	"log"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// ResolveTenantUseCase mapea la identidad del operador a exactamente un tenant
// Lookup puro, sin efectos secundarios; la falla no es fatal para el caller
// y se reintenta cada vez que la identidad del operador cambia
type ResolveTenantUseCase struct {
	tenantRepo port.TenantRepository
}

// NewResolveTenantUseCase crea una nueva instancia del caso de uso
func NewResolveTenantUseCase(tenantRepo port.TenantRepository) *ResolveTenantUseCase {
	return &ResolveTenantUseCase{tenantRepo: tenantRepo}
}

// Execute resuelve el scope de tenant (ordenado, gana el primer match):
// 1. Registro de negocio keyed por el id del operador CON nombre de negocio
//    no vacío → el operador es dueño, scope = su propio id
//    (un registro sin nombre de negocio fue creado como empleado y no
//    cortocircuita la resolución acá)
// 2. Empleado cuyo email matchee el del operador, normalizado igual que
//    al momento de provisionarlo → scope = tenant dueño de ese registro
// 3. Nada matchea → ErrNoTenantFound: la sesión queda sin acceso al catálogo
func (uc *ResolveTenantUseCase) Execute(ctx context.Context, operatorID, operatorEmail string) (string, error) {
	if operatorID == "" {
		return "", entity.ErrNoTenantFound
	}

	// PASO 1: lookup de dueño por id propio
	businessName, found, err := uc.tenantRepo.GetBusinessName(ctx, operatorID)
	if err != nil {
		return "", fmt.Errorf("error looking up business record: %w", err)
	}
	if found && businessName != "" {
		return operatorID, nil
	}

	// PASO 2: búsqueda tenant-wide de empleado por email normalizado
	normalized := entity.NormalizeEmail(operatorEmail)
	if normalized != "" {
		tenantID, found, err := uc.tenantRepo.FindTenantByEmployeeEmail(ctx, normalized)
		if err != nil {
			return "", fmt.Errorf("error looking up employee record: %w", err)
		}
		if found {
			log.Printf("👤 Operador %s resuelto como empleado del tenant %s", operatorID, tenantID)
			return tenantID, nil
		}
	}

	return "", entity.ErrNoTenantFound
}
