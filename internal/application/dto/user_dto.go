package dto

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// UserResponse usuario.
type UserResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Users  []UserResponse `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
