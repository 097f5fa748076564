package request

import "github.com/shopspring/decimal"

// AddProductRequest request para crear un producto del catálogo
type AddProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock" binding:"gte=0"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	Barcode     string          `json:"barcode,omitempty"`
}
