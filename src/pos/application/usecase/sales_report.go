package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pos/src/pos/application/response"

	"github.com/shopspring/decimal"
)

// SalesReportUseCase caso de uso para el reporte agregado de ventas por fecha
type SalesReportUseCase struct {
	db *sql.DB
}

// NewSalesReportUseCase crea una nueva instancia del caso de uso
func NewSalesReportUseCase(db *sql.DB) *SalesReportUseCase {
	return &SalesReportUseCase{db: db}
}

// Execute genera el reporte para una fecha específica
// Usa rango [from, to) en vez de DATE(created_at) para aprovechar el índice
func (uc *SalesReportUseCase) Execute(ctx context.Context, tenantID string, date string) (*response.SalesReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	query := `
		SELECT
			COUNT(*) AS sales_count,
			COUNT(*) FILTER (WHERE payment_type = 'Cash') AS cash_count,
			COUNT(*) FILTER (WHERE payment_type = 'Card') AS card_count,
			COALESCE(SUM(subtotal), 0) AS subtotal_sum,
			COALESCE(SUM(tax), 0) AS tax_sum,
			COALESCE(SUM(total), 0) AS total_sum,
			MIN(created_at) AS first_sale,
			MAX(created_at) AS last_sale
		FROM sales
		WHERE tenant_id = $1
			AND created_at >= $2
			AND created_at < $3
	`

	var salesCount, cashCount, cardCount int
	var subtotalSum, taxSum, totalSum decimal.Decimal
	var firstSale, lastSale sql.NullTime

	err = uc.db.QueryRowContext(ctx, query, tenantID, from, to).Scan(
		&salesCount,
		&cashCount,
		&cardCount,
		&subtotalSum,
		&taxSum,
		&totalSum,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sales report: %w", err)
	}

	resp := &response.SalesReportResponse{
		Date:        date,
		SalesCount:  salesCount,
		CashCount:   cashCount,
		CardCount:   cardCount,
		SubtotalSum: subtotalSum,
		TaxSum:      taxSum,
		TotalSum:    totalSum,
	}

	if firstSale.Valid {
		resp.FirstSaleAt = &firstSale.Time
	}
	if lastSale.Valid {
		resp.LastSaleAt = &lastSale.Time
	}

	return resp, nil
}
