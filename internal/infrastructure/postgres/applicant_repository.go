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

var _ repository.ApplicantRepository = (*ApplicantRepo)(nil)

// ApplicantRepo implementación del puerto ApplicantRepository sobre PostgreSQL.
// skills se almacena como text[] y job_preferences como jsonb.
type ApplicantRepo struct {
	db Querier
}

// NewApplicantRepository construye el adaptador de persistencia para postulantes.
func NewApplicantRepository(db Querier) *ApplicantRepo {
	return &ApplicantRepo{db: db}
}

const applicantColumns = `id, user_id, bio, skills, experience_years, education,
	location, resume_url, job_preferences, created_at, updated_at`

// Create persiste el perfil profesional de un postulante.
func (r *ApplicantRepo) Create(ctx context.Context, p *entity.ApplicantProfile) error {
	query := `
		INSERT INTO applicant_profiles (` + applicantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Bio, p.Skills, p.ExperienceYears, p.Education,
		p.Location, p.ResumeURL, p.JobPreferences, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert applicant profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil profesional de un usuario. Devuelve nil sin
// error cuando el postulante aún no lo completó.
func (r *ApplicantRepo) GetByUserID(ctx context.Context, userID string) (*entity.ApplicantProfile, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicant_profiles WHERE user_id = $1`
	var p entity.ApplicantProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Bio, &p.Skills, &p.ExperienceYears, &p.Education,
		&p.Location, &p.ResumeURL, &p.JobPreferences, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get applicant profile: %w", err)
	}
	return &p, nil
}

// Update actualiza el perfil profesional.
func (r *ApplicantRepo) Update(ctx context.Context, p *entity.ApplicantProfile) error {
	query := `
		UPDATE applicant_profiles SET bio = $2, skills = $3, experience_years = $4,
			education = $5, location = $6, resume_url = $7, job_preferences = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Bio, p.Skills, p.ExperienceYears, p.Education, p.Location,
		p.ResumeURL, p.JobPreferences, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update applicant profile: %w", err)
	}
	return nil
}
