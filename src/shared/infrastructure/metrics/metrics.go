package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del core transaccional, expuestos vía /metrics cuando
// Prometheus está habilitado en la configuración
var (
	// SalesFinalized ventas commiteadas con éxito
	SalesFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_finalized_total",
		Help: "Total de ventas finalizadas y commiteadas",
	})

	// SaleFailures fallas de finalización por motivo
	SaleFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sale_failures_total",
		Help: "Total de finalizaciones fallidas, por motivo",
	}, []string{"reason"})

	// StockConflicts carreras de stock perdidas contra sesiones concurrentes
	StockConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_stock_conflicts_total",
		Help: "Total de ventas rechazadas por conflicto de stock",
	})

	// CatalogRefreshes recargas de snapshot de catálogo por colección
	CatalogRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_catalog_refreshes_total",
		Help: "Total de recargas de snapshot de catálogo, por colección",
	}, []string{"collection"})
)
