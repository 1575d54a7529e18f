package entity

import "time"

// Roles válidos de la plataforma. Un usuario tiene exactamente un rol,
// asignado en el registro e inmutable después.
const (
	RoleAdmin     = "admin"
	RoleCompany   = "company"
	RoleApplicant = "applicant"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleCompany || s == RoleApplicant
}

// User representa una identidad autenticable de la plataforma.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleAssignment vincula un usuario con su único rol.
// Invariante: a lo sumo una asignación por usuario (UNIQUE en user_roles.user_id).
type RoleAssignment struct {
	ID        string
	UserID    string
	Role      string // ver constantes Role*
	CreatedAt time.Time
}
