package port

import (
	"context"

	"pos/src/pos/domain/entity"
)

// SettingsRepository contrato de persistencia del singleton de settings
type SettingsRepository interface {
	// Get retorna los settings del tenant; found=false si nunca se persistieron
	Get(ctx context.Context, tenantID string) (settings entity.Settings, found bool, err error)

	// ApplyPatch aplica un patch parcial con semántica de merge:
	// actualizar un campo no debe pisar los demás
	ApplyPatch(ctx context.Context, tenantID string, patch entity.SettingsPatch) (entity.Settings, error)
}
