package usecase

import (
	"context"
	"fmt"
	"log"

	"pos/src/pos/application/request"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// UpdateSettingsUseCase caso de uso para actualizar settings con merge
type UpdateSettingsUseCase struct {
	settingsRepo port.SettingsRepository
	catalog      port.CatalogView
}

// NewUpdateSettingsUseCase crea una nueva instancia del caso de uso
func NewUpdateSettingsUseCase(settingsRepo port.SettingsRepository, catalog port.CatalogView) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingsRepo: settingsRepo, catalog: catalog}
}

// Execute aplica el patch parcial: los campos ausentes no se tocan
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, tenantID string, req *request.UpdateSettingsRequest) (entity.Settings, error) {
	patch := entity.SettingsPatch{
		StoreName:              req.StoreName,
		Currency:               req.Currency,
		TaxRate:                req.TaxRate,
		LowStockThreshold:      req.LowStockThreshold,
		EnableNotifications:    req.EnableNotifications,
		EnableLowStockAlerts:   req.EnableLowStockAlerts,
		RequireManagerApproval: req.RequireManagerApproval,
	}
	if err := patch.Validate(); err != nil {
		return entity.Settings{}, err
	}

	settings, err := uc.settingsRepo.ApplyPatch(ctx, tenantID, patch)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("error updating settings: %w", err)
	}

	log.Printf("⚙️  Settings actualizados para tenant %s", tenantID)
	uc.catalog.Invalidate(tenantID, "settings")
	return settings, nil
}
