package request

import "github.com/shopspring/decimal"

// UpdateSettingsRequest patch parcial de settings del tenant
// Solo los campos presentes se actualizan (semántica de merge)
type UpdateSettingsRequest struct {
	StoreName              *string          `json:"store_name,omitempty"`
	Currency               *string          `json:"currency,omitempty"`
	TaxRate                *decimal.Decimal `json:"tax_rate,omitempty"`
	LowStockThreshold      *int             `json:"low_stock_threshold,omitempty"`
	EnableNotifications    *bool            `json:"enable_notifications,omitempty"`
	EnableLowStockAlerts   *bool            `json:"enable_low_stock_alerts,omitempty"`
	RequireManagerApproval *bool            `json:"require_manager_approval,omitempty"`
}
