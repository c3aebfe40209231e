package dto

import "time"

// LoginRequest entrada para autenticar una aplicación admin y obtener un JWT.
type LoginRequest struct {
	AppName string `json:"app_name"`
	APIKey  string `json:"api_key"`
}

// LoginResponse token emitido.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateUserRequest entrada para registrar una aplicación cliente de la API.
type CreateUserRequest struct {
	AppName     string   `json:"app_name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	ReadOnly    bool     `json:"read_only"`
}

// UserResponse salida de una aplicación. La clave nunca se devuelve; solo
// CreateUserResponse la incluye, una única vez.
type UserResponse struct {
	ID          int64     `json:"id"`
	AppName     string    `json:"app_name"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	ReadOnly    bool      `json:"read_only"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateUserResponse salida del registro, con la clave en claro recién
// generada.
type CreateUserResponse struct {
	UserResponse
	APIKey string `json:"api_key"`
}

// UserListResponse lista paginada de aplicaciones.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
