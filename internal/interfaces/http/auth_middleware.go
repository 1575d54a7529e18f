package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// PathAuth destino de redirección para peticiones sin sesión válida.
const PathAuth = "/auth"

// RoleResolver resuelve el rol vigente de un usuario. El rol NO viaja en el
// token: se consulta en cada petición para que un cambio de rol surta efecto
// de inmediato. Un fallo de resolución degrada a rol vacío (sin privilegios).
type RoleResolver interface {
	Resolve(ctx context.Context, userID string) string
}

// AuthMiddleware valida el Bearer Token JWT, extrae UserID y Email a c.Locals
// y resuelve el rol vigente contra la base.
func AuthMiddleware(jwtSecret string, roles RoleResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido", RedirectTo: PathAuth})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>", RedirectTo: PathAuth})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío", RedirectTo: PathAuth})
		}
		userID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado", RedirectTo: PathAuth})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalRole, roles.Resolve(c.UserContext(), userID))
		return c.Next()
	}
}

// RequireRole autoriza el acceso solo a los roles indicados. Un rol distinto
// recibe 403 con la ruta de su propio panel en redirect_to, para que el
// cliente lo reubique en vez de mostrar un panel ajeno.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:       "FORBIDDEN",
			Message:    "el rol actual no tiene acceso a este recurso",
			RedirectTo: DashboardPath(role),
		})
	}
}

// DashboardPath devuelve la ruta canónica del panel de un rol.
// Sin rol asignado se vuelve al inicio.
func DashboardPath(role string) string {
	switch role {
	case entity.RoleAdmin:
		return "/admin"
	case entity.RoleCompany:
		return "/company"
	case entity.RoleApplicant:
		return "/applicant"
	}
	return "/"
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetRole devuelve el rol resuelto del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
