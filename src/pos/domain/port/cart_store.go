package port

import (
	"context"

	"pos/src/pos/domain/entity"
)

// CartStore puerto de durabilidad clave-valor para carritos de sesión
// El carrito sobrevive recargas de sesión pero nunca se comparte entre
// sesiones ni tenants; el estado autoritativo vive en memoria
type CartStore interface {
	// Save persiste el estado completo del carrito
	Save(ctx context.Context, cart *entity.Cart) error

	// Load rehidrata el carrito de una sesión; nil si no existe
	Load(ctx context.Context, tenantID, sessionID string) (*entity.Cart, error)

	// Delete descarta el carrito persistido de una sesión
	Delete(ctx context.Context, tenantID, sessionID string) error
}
