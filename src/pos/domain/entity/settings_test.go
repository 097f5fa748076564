package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings("tenant-1")

	assert.Equal(t, "tenant-1", settings.TenantID)
	assert.Equal(t, "USD", settings.Currency)
	assert.True(t, settings.TaxRate.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, 10, settings.LowStockThreshold)
}

func TestSettingsPatchValidate(t *testing.T) {
	t.Run("tasa fuera de rango", func(t *testing.T) {
		over := decimal.NewFromInt(101)
		patch := SettingsPatch{TaxRate: &over}
		assert.ErrorIs(t, patch.Validate(), ErrInvalidTaxRate)

		negative := decimal.NewFromInt(-1)
		patch = SettingsPatch{TaxRate: &negative}
		assert.ErrorIs(t, patch.Validate(), ErrInvalidTaxRate)
	})

	t.Run("umbral negativo", func(t *testing.T) {
		threshold := -1
		patch := SettingsPatch{LowStockThreshold: &threshold}
		assert.ErrorIs(t, patch.Validate(), ErrInvalidThreshold)
	})

	t.Run("patch vacio es valido", func(t *testing.T) {
		require.NoError(t, (&SettingsPatch{}).Validate())
	})
}

func TestSettingsApplyMerge(t *testing.T) {
	current := DefaultSettings("tenant-1")
	current.StoreName = "Almacen Central"
	current.LowStockThreshold = 5

	// Un patch parcial no pisa los campos que no trae
	rate := decimal.RequireFromString("16")
	updated := current.Apply(SettingsPatch{TaxRate: &rate})

	assert.True(t, updated.TaxRate.Equal(rate))
	assert.Equal(t, "Almacen Central", updated.StoreName)
	assert.Equal(t, "USD", updated.Currency)
	assert.Equal(t, 5, updated.LowStockThreshold)
	assert.True(t, updated.EnableNotifications)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestSettingsApplyBooleans(t *testing.T) {
	current := DefaultSettings("tenant-1")

	off := false
	on := true
	updated := current.Apply(SettingsPatch{
		EnableNotifications:    &off,
		RequireManagerApproval: &on,
	})

	assert.False(t, updated.EnableNotifications)
	assert.True(t, updated.RequireManagerApproval)
	assert.True(t, updated.EnableLowStockAlerts)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "maria@shop.com", NormalizeEmail("  Maria@Shop.COM  "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
