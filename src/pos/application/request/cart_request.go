package request

import "github.com/google/uuid"

// AddCartItemRequest request para agregar una unidad de un producto al carrito
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest request para ajustar la cantidad de un item por delta
// El delta puede ser negativo; la cantidad se recorta a 0 y el item se elimina
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}
