package dto

import "time"

// RegisterRequest entrada para registro: crea usuario, asignación de rol y
// perfil base en una sola transacción. El rol es definitivo.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=admin company applicant"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse salida de registro/login: token JWT + usuario + rol resuelto.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	Role  string       `json:"role"`
}

// MeResponse salida de GET /api/auth/me: la identidad resuelta de la sesión.
// Role queda "" cuando el usuario no tiene asignación o la consulta falló.
type MeResponse struct {
	User UserResponse `json:"user"`
	Role string       `json:"role"`
}
