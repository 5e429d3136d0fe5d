package api

import "github.com/phrazzld/demo-api/internal/domain"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	FullName *string `json:"fullName"`
}

// RegisterResponse echoes the new account without its password.
type RegisterResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"fullName"`
	Message  string  `json:"message"`
}

// LoginRequest is the body of POST /auth/login. Both fields are optional;
// a missing one simply fails the credential check.
type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message  string  `json:"message"`
	Token    string  `json:"token"`
	Username string  `json:"username"`
	FullName *string `json:"fullName"`
}

// OrderRequest is the body of POST and PUT /orders. It carries no id or
// createdAt, so whatever a client sends for them is skipped without being
// parsed.
type OrderRequest struct {
	OrderNumber  string   `json:"orderNumber"`
	CustomerName string   `json:"customerName"`
	TotalAmount  *float64 `json:"totalAmount"`
	Status       *string  `json:"status"`
}

func (o *OrderRequest) toOrder() *domain.Order {
	return &domain.Order{
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
	}
}

// Validate applies the order constraints to the request.
func (o *OrderRequest) Validate() error {
	return o.toOrder().Validate()
}
