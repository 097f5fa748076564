package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem un producto seleccionado con cantidad de sesión
// Nombre y precio son snapshot al momento de agregar, no referencia viva
type CartItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Cart colección ordenada de items por sesión, sin productos duplicados
// Los límites de stock son advisory para UX; la validación autoritativa
// ocurre de nuevo en el checkout porque el stock cambia entre sesiones
type Cart struct {
	TenantID  string     `json:"tenant_id"`
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// NewCart crea un carrito vacío para una sesión
func NewCart(tenantID, sessionID string) *Cart {
	return &Cart{
		TenantID:  tenantID,
		SessionID: sessionID,
		Items:     []CartItem{},
	}
}

// Add agrega una unidad del producto al carrito
// No-op si no hay stock; si el producto ya está, incrementa la cantidad
// salvo que supere el stock actual (tope silencioso, no error)
// Devuelve true si el carrito cambió
func (c *Cart) Add(product *Product) bool {
	if product == nil || product.Stock <= 0 {
		return false
	}

	if idx := c.find(product.ID); idx >= 0 {
		if c.Items[idx].Quantity >= product.Stock {
			return false
		}
		c.Items[idx].Quantity++
		return true
	}

	c.Items = append(c.Items, CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		UnitPrice: product.Price,
		Quantity:  1,
	})
	return true
}

// UpdateQuantity ajusta la cantidad por delta (puede ser negativo)
// Un delta positivo que supere el stock actual se rechaza (item sin cambios);
// la cantidad se recorta a 0 y el item en 0 se elimina del carrito
// El stock recibido debe ser el más recientemente sincronizado, nunca
// el snapshot guardado al momento de agregar
func (c *Cart) UpdateQuantity(productID uuid.UUID, delta int, currentStock int) bool {
	idx := c.find(productID)
	if idx < 0 {
		return false
	}

	newQuantity := c.Items[idx].Quantity + delta
	if delta > 0 && newQuantity > currentStock {
		return false
	}
	if newQuantity <= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		return true
	}

	c.Items[idx].Quantity = newQuantity
	return true
}

// Remove elimina el producto del carrito incondicionalmente
func (c *Cart) Remove(productID uuid.UUID) {
	if idx := c.find(productID); idx >= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}
}

// Clear vacía el carrito
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

// IsEmpty indica si el carrito no tiene items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Quantity cantidad actual para un producto, 0 si no está
func (c *Cart) Quantity(productID uuid.UUID) int {
	if idx := c.find(productID); idx >= 0 {
		return c.Items[idx].Quantity
	}
	return 0
}

// Copy devuelve una copia del carrito para lecturas fuera del lock de sesión
func (c *Cart) Copy() *Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return &Cart{
		TenantID:  c.TenantID,
		SessionID: c.SessionID,
		Items:     items,
	}
}

func (c *Cart) find(productID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
