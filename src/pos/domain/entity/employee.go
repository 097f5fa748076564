package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Employee representa un empleado provisionado por el dueño de un tenant
// El email es la única referencia cruzada confiable hacia la identidad de
// autenticación: el uid del empleado no se conoce al momento de provisionarlo
type Employee struct {
	ID        uuid.UUID `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeEmail normaliza un email para matching entre escritura y lectura
// La misma normalización se aplica al provisionar y al resolver tenant;
// si divergen, la resolución falla en silencio
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewEmployee crea un nuevo empleado con el email ya normalizado
func NewEmployee(tenantID, name, email, role, createdBy string) (*Employee, error) {
	if tenantID == "" {
		return nil, ErrTenantIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return nil, ErrEmailRequired
	}

	return &Employee{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		Email:     normalized,
		Role:      role,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}, nil
}
