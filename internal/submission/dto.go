package submission

import "github.com/benjaminbelloeil/portfolio-api/internal/cart"

// ContactRequest is the wire payload of POST /api/send.
type ContactRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Service  string `json:"service"`
	Message  string `json:"message" validate:"required"`
	FormType string `json:"formType"`
}

// OrderRequest is the wire payload of POST /api/send-order. Cart and total
// are the client-side snapshot taken at submission time.
type OrderRequest struct {
	FirstName     string      `json:"firstName" validate:"required"`
	LastName      string      `json:"lastName" validate:"required"`
	Email         string      `json:"email" validate:"required,email"`
	DeliveryEmail string      `json:"deliveryEmail" validate:"omitempty,email"`
	Platform      string      `json:"platform"`
	PhoneNumber   string      `json:"phoneNumber"`
	Notes         string      `json:"notes"`
	Cart          []cart.Item `json:"cart" validate:"required,min=1"`
	Total         string      `json:"total" validate:"required"`
}
