package repository

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// RoleRepository define el puerto de persistencia para la asignación de rol.
// No existe operación de actualización: el rol es inmutable tras el registro.
type RoleRepository interface {
	Create(ctx context.Context, assignment *entity.RoleAssignment) error
	// GetRoleByUserID devuelve el rol del usuario o "" si no tiene asignación.
	GetRoleByUserID(ctx context.Context, userID string) (string, error)
}
