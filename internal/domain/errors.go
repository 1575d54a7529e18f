package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrAlreadyApplied     = errors.New("ya existe una postulación para esta oferta")
	ErrProfileRequired    = errors.New("se requiere un perfil antes de continuar")
)
