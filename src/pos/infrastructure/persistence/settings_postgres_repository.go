package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// SettingsPostgresRepository implementa SettingsRepository usando PostgreSQL
// El merge se materializa bajo lock de fila: se lee el estado actual (o los
// defaults), se aplica el patch campo a campo y se upsertea la fila completa
type SettingsPostgresRepository struct {
	db *sql.DB
}

// NewSettingsPostgresRepository crea una nueva instancia del repositorio
func NewSettingsPostgresRepository(db *sql.DB) port.SettingsRepository {
	return &SettingsPostgresRepository{db: db}
}

const settingsColumns = `
	tenant_id, store_name, currency, tax_rate, low_stock_threshold,
	enable_notifications, enable_low_stock_alerts, require_manager_approval,
	updated_at
`

// Get retorna los settings del tenant; found=false si nunca se persistieron
func (r *SettingsPostgresRepository) Get(ctx context.Context, tenantID string) (entity.Settings, bool, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE tenant_id = $1`

	settings, err := scanSettings(r.db.QueryRowContext(ctx, query, tenantID))
	if err == sql.ErrNoRows {
		return entity.DefaultSettings(tenantID), false, nil
	}
	if err != nil {
		return entity.Settings{}, false, fmt.Errorf("error querying settings: %w", err)
	}
	return settings, true, nil
}

// ApplyPatch aplica el patch con semántica de merge dentro de una transacción
func (r *SettingsPostgresRepository) ApplyPatch(ctx context.Context, tenantID string, patch entity.SettingsPatch) (entity.Settings, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// Leer el estado actual bajo lock para que dos patches concurrentes
	// no se pisen campos entre sí
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE tenant_id = $1 FOR UPDATE`

	current, err := scanSettings(tx.QueryRowContext(ctx, query, tenantID))
	if err == sql.ErrNoRows {
		current = entity.DefaultSettings(tenantID)
	} else if err != nil {
		return entity.Settings{}, fmt.Errorf("error querying settings: %w", err)
	}

	merged := current.Apply(patch)

	upsert := `
		INSERT INTO settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (tenant_id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			currency = EXCLUDED.currency,
			tax_rate = EXCLUDED.tax_rate,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			enable_notifications = EXCLUDED.enable_notifications,
			enable_low_stock_alerts = EXCLUDED.enable_low_stock_alerts,
			require_manager_approval = EXCLUDED.require_manager_approval,
			updated_at = EXCLUDED.updated_at
	`

	_, err = tx.ExecContext(ctx, upsert,
		merged.TenantID,
		merged.StoreName,
		merged.Currency,
		merged.TaxRate,
		merged.LowStockThreshold,
		merged.EnableNotifications,
		merged.EnableLowStockAlerts,
		merged.RequireManagerApproval,
		merged.UpdatedAt,
	)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("error upserting settings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return entity.Settings{}, fmt.Errorf("error committing transaction: %w", err)
	}

	return merged, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSettings(row rowScanner) (entity.Settings, error) {
	var s entity.Settings
	err := row.Scan(
		&s.TenantID,
		&s.StoreName,
		&s.Currency,
		&s.TaxRate,
		&s.LowStockThreshold,
		&s.EnableNotifications,
		&s.EnableLowStockAlerts,
		&s.RequireManagerApproval,
		&s.UpdatedAt,
	)
	return s, err
}
