package request

// RegisterEmployeeRequest request para provisionar un empleado del tenant
type RegisterEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}
