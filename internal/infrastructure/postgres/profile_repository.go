package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(db Querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Create persiste un nuevo perfil de contacto.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, full_name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.FullName, p.Email, p.Phone, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de un usuario.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT id, user_id, full_name, email, phone, created_at, updated_at
		FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by user: %w", err)
	}
	return &p, nil
}

// Update actualiza el perfil (solo llega aquí el dueño).
func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	query := `
		UPDATE profiles SET full_name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, p.ID, p.FullName, p.Email, p.Phone, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// ListWithRole lista todos los perfiles con su rol (LEFT JOIN user_roles,
// rol vacío si el usuario no tiene asignación). Vista de administración.
func (r *ProfileRepo) ListWithRole(ctx context.Context) ([]repository.ProfileWithRole, error) {
	query := `
		SELECT p.id, p.user_id, p.full_name, p.email, p.phone,
		       COALESCE(ur.role, ''), p.created_at
		FROM profiles p
		LEFT JOIN user_roles ur ON ur.user_id = p.user_id
		ORDER BY p.created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles with role: %w", err)
	}
	defer rows.Close()
	var list []repository.ProfileWithRole
	for rows.Next() {
		var row repository.ProfileWithRole
		if err := rows.Scan(&row.ID, &row.UserID, &row.FullName, &row.Email, &row.Phone, &row.Role, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan profile with role: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
