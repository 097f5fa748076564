package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings configuración singleton por tenant
// Se actualiza con semántica de merge: un patch parcial no pisa otros campos
type Settings struct {
	TenantID               string          `json:"tenant_id"`
	StoreName              string          `json:"store_name"`
	Currency               string          `json:"currency"`
	TaxRate                decimal.Decimal `json:"tax_rate"` // porcentaje 0-100
	LowStockThreshold      int             `json:"low_stock_threshold"`
	EnableNotifications    bool            `json:"enable_notifications"`
	EnableLowStockAlerts   bool            `json:"enable_low_stock_alerts"`
	RequireManagerApproval bool            `json:"require_manager_approval"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// SettingsPatch patch parcial de settings; los campos nil no se tocan
type SettingsPatch struct {
	StoreName              *string          `json:"store_name,omitempty"`
	Currency               *string          `json:"currency,omitempty"`
	TaxRate                *decimal.Decimal `json:"tax_rate,omitempty"`
	LowStockThreshold      *int             `json:"low_stock_threshold,omitempty"`
	EnableNotifications    *bool            `json:"enable_notifications,omitempty"`
	EnableLowStockAlerts   *bool            `json:"enable_low_stock_alerts,omitempty"`
	RequireManagerApproval *bool            `json:"require_manager_approval,omitempty"`
}

// DefaultSettings valores por defecto para un tenant sin settings persistidos
func DefaultSettings(tenantID string) Settings {
	return Settings{
		TenantID:             tenantID,
		StoreName:            "",
		Currency:             "USD",
		TaxRate:              decimal.NewFromInt(8),
		LowStockThreshold:    10,
		EnableNotifications:  true,
		EnableLowStockAlerts: true,
	}
}

// Validate valida los campos presentes en el patch
func (p *SettingsPatch) Validate() error {
	if p.TaxRate != nil {
		if p.TaxRate.LessThan(decimal.Zero) || p.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return ErrInvalidTaxRate
		}
	}
	if p.LowStockThreshold != nil && *p.LowStockThreshold < 0 {
		return ErrInvalidThreshold
	}
	return nil
}

// Apply aplica el patch campo a campo sobre los settings actuales
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.StoreName != nil {
		s.StoreName = *p.StoreName
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.TaxRate != nil {
		s.TaxRate = *p.TaxRate
	}
	if p.LowStockThreshold != nil {
		s.LowStockThreshold = *p.LowStockThreshold
	}
	if p.EnableNotifications != nil {
		s.EnableNotifications = *p.EnableNotifications
	}
	if p.EnableLowStockAlerts != nil {
		s.EnableLowStockAlerts = *p.EnableLowStockAlerts
	}
	if p.RequireManagerApproval != nil {
		s.RequireManagerApproval = *p.RequireManagerApproval
	}
	s.UpdatedAt = time.Now()
	return s
}
