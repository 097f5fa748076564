package controller

import (
	"errors"
	"log"
	"net/http"

	"pos/src/pos/application/request"
	"pos/src/pos/application/usecase"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogController maneja las peticiones HTTP de catálogo, settings y empleados
type CatalogController struct {
	listProductsUC     *usecase.ListProductsUseCase
	addProductUC       *usecase.AddProductUseCase
	restockUC          *usecase.RestockProductUseCase
	updateSettingsUC   *usecase.UpdateSettingsUseCase
	registerEmployeeUC *usecase.RegisterEmployeeUseCase
	catalog            port.CatalogView
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(
	listProductsUC *usecase.ListProductsUseCase,
	addProductUC *usecase.AddProductUseCase,
	restockUC *usecase.RestockProductUseCase,
	updateSettingsUC *usecase.UpdateSettingsUseCase,
	registerEmployeeUC *usecase.RegisterEmployeeUseCase,
	catalog port.CatalogView,
) *CatalogController {
	return &CatalogController{
		listProductsUC:     listProductsUC,
		addProductUC:       addProductUC,
		restockUC:          restockUC,
		updateSettingsUC:   updateSettingsUC,
		registerEmployeeUC: registerEmployeeUC,
		catalog:            catalog,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.POST("", c.AddProduct)
		products.POST("/:product_id/restock", c.Restock)
	}

	settings := router.Group("/settings")
	{
		settings.GET("", c.GetSettings)
		settings.PATCH("", c.UpdateSettings)
	}

	employees := router.Group("/employees")
	{
		employees.GET("", c.ListEmployees)
		employees.POST("", c.RegisterEmployee)
	}

	log.Println("Rutas Catálogo disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  POST   /api/v1/products")
	log.Println("  POST   /api/v1/products/:product_id/restock")
	log.Println("  GET    /api/v1/settings")
	log.Println("  PATCH  /api/v1/settings")
	log.Println("  GET    /api/v1/employees")
	log.Println("  POST   /api/v1/employees")
}

// ListProducts lista el catálogo vivo del tenant con flags de stock bajo
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")

	items := c.listProductsUC.Execute(tenantID)
	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// AddProduct crea un producto del catálogo
func (c *CatalogController) AddProduct(ctx *gin.Context) {
	var req request.AddProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID := ctx.GetString("tenant_id")
	operatorID := ctx.GetString("operator_id")
	operatorEmail := ctx.GetString("operator_email")

	product, err := c.addProductUC.Execute(ctx.Request.Context(), tenantID, operatorID, operatorEmail, &req)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidPrice) || errors.Is(err, entity.ErrInvalidStock) ||
			errors.Is(err, entity.ErrProductNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creando producto: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// Restock incrementa el stock de un producto
func (c *CatalogController) Restock(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	var req request.RestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID := ctx.GetString("tenant_id")

	product, err := c.restockUC.Execute(ctx.Request.Context(), tenantID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrInvalidQuantity):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error en restock: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// GetSettings retorna los settings sincronizados del tenant
func (c *CatalogController) GetSettings(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	ctx.JSON(http.StatusOK, c.catalog.Settings(tenantID))
}

// UpdateSettings aplica un patch parcial de settings (merge)
func (c *CatalogController) UpdateSettings(ctx *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID := ctx.GetString("tenant_id")

	settings, err := c.updateSettingsUC.Execute(ctx.Request.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidTaxRate) || errors.Is(err, entity.ErrInvalidThreshold) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error actualizando settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// ListEmployees lista los empleados sincronizados del tenant
func (c *CatalogController) ListEmployees(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	employees := c.catalog.Employees(tenantID)
	ctx.JSON(http.StatusOK, gin.H{
		"items":       employees,
		"total_count": len(employees),
	})
}

// RegisterEmployee provisiona un empleado del tenant
func (c *CatalogController) RegisterEmployee(ctx *gin.Context) {
	var req request.RegisterEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID := ctx.GetString("tenant_id")
	operatorID := ctx.GetString("operator_id")

	employee, err := c.registerEmployeeUC.Execute(ctx.Request.Context(), tenantID, operatorID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrNameRequired) || errors.Is(err, entity.ErrEmailRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error provisionando empleado: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, employee)
}
