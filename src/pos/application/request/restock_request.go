package request

// RestockRequest request para incremento administrativo de stock
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
