package models

// Request bodies accepted by the HTTP API. The validate tags mirror the
// item and user schemas: they are checked at the API boundary before any
// service call is made.

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateSweetRequest is the body of POST /api/sweets.
// Quantity is optional and defaults to zero.
type CreateSweetRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Category    string  `json:"category" validate:"required,min=1,max=50"`
	Price       int64   `json:"price" validate:"required,gt=0"`
	Quantity    *int64  `json:"quantity" validate:"omitempty,gte=0"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateSweetRequest is the body of PUT /api/sweets/{id}. Every field is
// optional; only supplied fields are validated and written (merge-patch).
type UpdateSweetRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Category    *string `json:"category" validate:"omitempty,min=1,max=50"`
	Price       *int64  `json:"price" validate:"omitempty,gt=0"`
	Quantity    *int64  `json:"quantity" validate:"omitempty,gte=0"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

// Patch converts the request into the repository-level merge-patch.
func (r UpdateSweetRequest) Patch() SweetPatch {
	return SweetPatch{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// QuantityRequest is the body of the purchase and restock endpoints.
type QuantityRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}
