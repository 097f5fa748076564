package controller

import (
	"errors"
	"log"
	"net/http"

	"pos/src/pos/application/request"
	"pos/src/pos/application/response"
	"pos/src/pos/application/usecase"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POSController maneja las peticiones HTTP del carrito y del checkout
type POSController struct {
	cartSvc     *usecase.CartService
	checkoutUC  *usecase.CheckoutUseCase
	listSalesUC *usecase.ListSalesUseCase
	catalog     port.CatalogView
}

// NewPOSController crea una nueva instancia del controlador
func NewPOSController(
	cartSvc *usecase.CartService,
	checkoutUC *usecase.CheckoutUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	catalog port.CatalogView,
) *POSController {
	return &POSController{
		cartSvc:     cartSvc,
		checkoutUC:  checkoutUC,
		listSalesUC: listSalesUC,
		catalog:     catalog,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *POSController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", c.GetCart)
		cart.GET("/totals", c.GetTotals)
		cart.POST("/items", c.AddItem)
		cart.PATCH("/items/:product_id", c.UpdateItem)
		cart.DELETE("/items/:product_id", c.RemoveItem)
		cart.DELETE("", c.ClearCart)
	}

	pos := router.Group("/pos")
	{
		pos.POST("/sale", c.Checkout)
		pos.GET("/sales", c.ListSales)
	}

	log.Println("Rutas POS disponibles:")
	log.Println("  GET    /api/v1/cart")
	log.Println("  GET    /api/v1/cart/totals")
	log.Println("  POST   /api/v1/cart/items")
	log.Println("  PATCH  /api/v1/cart/items/:product_id")
	log.Println("  DELETE /api/v1/cart/items/:product_id")
	log.Println("  DELETE /api/v1/cart")
	log.Println("  POST   /api/v1/pos/sale  ⭐ (finalizar venta)")
	log.Println("  GET    /api/v1/pos/sales")
}

// GetCart retorna el estado actual del carrito de la sesión
func (c *POSController) GetCart(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	sessionID := ctx.GetString("session_id")

	cart := c.cartSvc.Get(ctx.Request.Context(), tenantID, sessionID)
	ctx.JSON(http.StatusOK, toCartResponse(cart))
}

// GetTotals calcula los totales del carrito con la tasa del tenant
func (c *POSController) GetTotals(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	sessionID := ctx.GetString("session_id")

	items := c.cartSvc.Snapshot(ctx.Request.Context(), tenantID, sessionID)
	settings := c.catalog.Settings(tenantID)
	totals := usecase.ComputeTotals(items, settings.TaxRate)

	ctx.JSON(http.StatusOK, response.TotalsResponse{
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
		TaxRate:  settings.TaxRate,
		Currency: settings.Currency,
	})
}

// AddItem agrega una unidad de un producto al carrito
func (c *POSController) AddItem(ctx *gin.Context) {
	var req request.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID := ctx.GetString("tenant_id")
	sessionID := ctx.GetString("session_id")

	cart, err := c.cartSvc.AddItem(ctx.Request.Context(), tenantID, sessionID, req.ProductID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toCartResponse(cart))
}

// UpdateItem ajusta la cantidad de un item por delta
func (c *POSController) UpdateItem(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	var req request.UpdateCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID := ctx.GetString("tenant_id")
	sessionID := ctx.GetString("session_id")

	cart, err := c.cartSvc.UpdateQuantity(ctx.Request.Context(), tenantID, sessionID, productID, req.Delta)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toCartResponse(cart))
}

// RemoveItem elimina un producto del carrito
func (c *POSController) RemoveItem(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	tenantID := ctx.GetString("tenant_id")
	sessionID := ctx.GetString("session_id")

	cart := c.cartSvc.RemoveItem(ctx.Request.Context(), tenantID, sessionID, productID)
	ctx.JSON(http.StatusOK, toCartResponse(cart))
}

// ClearCart vacía el carrito de la sesión
func (c *POSController) ClearCart(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")
	sessionID := ctx.GetString("session_id")

	cart := c.cartSvc.Clear(ctx.Request.Context(), tenantID, sessionID)
	ctx.JSON(http.StatusOK, toCartResponse(cart))
}

// Checkout finaliza el carrito como venta
func (c *POSController) Checkout(ctx *gin.Context) {
	var req request.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID := ctx.GetString("tenant_id")
	operatorID := ctx.GetString("operator_id")
	operatorEmail := ctx.GetString("operator_email")
	sessionID := ctx.GetString("session_id")

	resp, err := c.checkoutUC.Execute(ctx.Request.Context(), tenantID, operatorID, operatorEmail, sessionID, &req)
	if err != nil {
		status := checkoutErrorStatus(err)
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListSales lista el historial de ventas del tenant
func (c *POSController) ListSales(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")

	items, err := c.listSalesUC.Execute(ctx.Request.Context(), tenantID)
	if err != nil {
		log.Printf("Error listando ventas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// checkoutErrorStatus mapea la taxonomía de errores de finalización a HTTP
func checkoutErrorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrInsufficientTender),
		errors.Is(err, entity.ErrInvalidPaymentType):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrSaleFailed):
		// Falla transaccional: el carrito quedó intacto, el caller puede reintentar
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toCartResponse(cart *entity.Cart) response.CartResponse {
	items := make([]response.CartItemResponse, 0, len(cart.Items))
	totalItems := 0
	for _, item := range cart.Items {
		items = append(items, response.CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
		totalItems += item.Quantity
	}

	return response.CartResponse{
		SessionID:  cart.SessionID,
		Items:      items,
		TotalItems: totalItems,
	}
}
