package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// ProfileWithRole fila cruda del listado de perfiles con su rol (LEFT JOIN user_roles).
// Role queda "" cuando el usuario no tiene asignación.
type ProfileWithRole struct {
	ID        string
	UserID    string
	FullName  string
	Email     string
	Phone     string
	Role      string
	CreatedAt time.Time
}

// ProfileRepository puerto de persistencia para Profile (datos de contacto).
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	// ListWithRole lista todos los perfiles con su rol (vista de administración).
	ListWithRole(ctx context.Context) ([]ProfileWithRole, error)
}

// CompanyRepository puerto de persistencia para el perfil de empresa.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context) ([]*entity.Company, error)
}

// ApplicantRepository puerto de persistencia para el perfil de candidato.
type ApplicantRepository interface {
	Create(ctx context.Context, profile *entity.ApplicantProfile) error
	GetByUserID(ctx context.Context, userID string) (*entity.ApplicantProfile, error)
	Update(ctx context.Context, profile *entity.ApplicantProfile) error
}
