package dto

import "time"

// RegisterRequest entrada para registro (auth).
// Con company_id el usuario se une a una empresa existente; sin él se crea la empresa
// con company_name y nit, y el usuario queda como admin.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyID   string `json:"company_id" validate:"omitempty,uuid"`
	CompanyName string `json:"company_name" validate:"omitempty,max=250"`
	NIT         string `json:"nit" validate:"omitempty,max=17"`
	Name        string `json:"name" validate:"omitempty,max=150"`
	Role        string `json:"role" validate:"omitempty,oneof=admin emisor"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse página de usuarios de la empresa.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
