package dto

import "strings"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// RedirectTo indica al cliente la ruta canónica a la que navegar
	// (sign-in cuando falta sesión, dashboard del rol cuando el rol no coincide).
	RedirectTo string `json:"redirect_to,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// ParseSkillList normaliza una lista de habilidades separada por comas:
// recorta espacios y descarta entradas vacías. "Go, SQL,,React " -> [Go SQL React].
func ParseSkillList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
