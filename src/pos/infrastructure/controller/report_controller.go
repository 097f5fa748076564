package controller

import (
	"log"
	"net/http"
	"time"

	"pos/src/pos/application/usecase"

	"github.com/gin-gonic/gin"
)

// ReportController maneja las peticiones HTTP de reportes de ventas
type ReportController struct {
	salesReportUC *usecase.SalesReportUseCase
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(salesReportUC *usecase.SalesReportUseCase) *ReportController {
	return &ReportController{salesReportUC: salesReportUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/sales", c.SalesReport)
	}

	log.Println("Rutas Reportes disponibles:")
	log.Println("  GET    /api/v1/reports/sales?date=YYYY-MM-DD")
}

// SalesReport genera el reporte agregado de ventas para una fecha
// Sin fecha, usa el día actual
func (c *ReportController) SalesReport(ctx *gin.Context) {
	if c.salesReportUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "sales report not available (database not configured)",
		})
		return
	}

	tenantID := ctx.GetString("tenant_id")

	date := ctx.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	report, err := c.salesReportUC.Execute(ctx.Request.Context(), tenantID, date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}
