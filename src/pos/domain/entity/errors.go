package entity

import "errors"

var (
	// Resolución de tenant
	ErrNoTenantFound = errors.New("no tenant found for operator")

	// Validaciones de checkout
	ErrEmptyCart          = errors.New("cart has no items")
	ErrNotAuthorized      = errors.New("tenant scope or operator identity is missing")
	ErrInsufficientTender = errors.New("amount_tendered must be greater than or equal to total")

	// Falla transaccional: cubre tanto conectividad como carrera de stock perdida
	ErrSaleFailed        = errors.New("sale could not be completed")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Validaciones de entidades
	ErrTenantIDRequired    = errors.New("tenant_id is required")
	ErrProductNameRequired = errors.New("product_name is required")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to 0")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidStock        = errors.New("stock must be greater than or equal to 0")
	ErrInvalidTaxRate      = errors.New("tax_rate must be between 0 and 100")
	ErrInvalidThreshold    = errors.New("low_stock_threshold must be greater than or equal to 0")
	ErrInvalidPaymentType  = errors.New("payment_type must be Cash or Card")
	ErrEmailRequired       = errors.New("email is required")
	ErrNameRequired        = errors.New("name is required")
	ErrSaleMustHaveItems   = errors.New("sale must have at least one item")
	ErrProductNotFound     = errors.New("product not found")
)
