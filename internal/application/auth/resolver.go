package auth

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/repository"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

// RoleResolver resuelve el único rol asociado a una identidad autenticada.
// Es la pieza que decide qué dashboard y qué mutaciones ve cada sesión, por
// eso consulta la tabla user_roles en cada petición en vez de congelar el
// rol dentro del token.
type RoleResolver struct {
	roles repository.RoleRepository
	log   *logger.Logger
}

// NewRoleResolver construye el resolver.
func NewRoleResolver(roles repository.RoleRepository, log *logger.Logger) *RoleResolver {
	return &RoleResolver{roles: roles, log: log}
}

// Resolve devuelve el rol del usuario o "" si no tiene asignación.
// Un fallo de consulta se registra y degrada a "" (sin rol): nunca es fatal,
// la capa HTTP enruta "sin rol" a la raíz pública.
func (r *RoleResolver) Resolve(ctx context.Context, userID string) string {
	role, err := r.roles.GetRoleByUserID(ctx, userID)
	if err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("fallo al resolver rol; se trata como sin rol")
		return ""
	}
	return role
}
