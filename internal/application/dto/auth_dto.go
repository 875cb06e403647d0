package dto

import "time"

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada del formulario de registro.
// ConfirmPassword se valida aquí; el backend valida el resto.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionResponse salida de login: el usuario y la expiración de la sesión.
// El token nunca viaja en el cuerpo: se entrega como cookie HTTP-only.
type SessionResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt,omitempty"`
}
