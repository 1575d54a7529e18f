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

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepository construye el adaptador de persistencia para postulaciones.
func NewApplicationRepository(db Querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// appJoinColumns columnas de la postulación con los datos de su oferta,
// empresa y candidato para las vistas cruzadas.
const appJoinColumns = `a.id, a.applicant_id, a.job_id, a.status, a.cover_letter,
	a.applied_at, a.updated_at, j.title, j.location, j.company_id, c.company_name,
	COALESCE(p.full_name, ''), COALESCE(u.email, '')`

const appJoinFrom = `
	FROM job_applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN companies c ON c.id = j.company_id
	JOIN applicant_profiles ap ON ap.id = a.applicant_id
	LEFT JOIN profiles p ON p.user_id = ap.user_id
	LEFT JOIN users u ON u.id = ap.user_id`

// Create persiste una postulación. La restricción UNIQUE (applicant_id, job_id)
// traduce el duplicado a ErrAlreadyApplied.
func (r *ApplicationRepo) Create(ctx context.Context, app *entity.JobApplication) error {
	query := `
		INSERT INTO job_applications (id, applicant_id, job_id, status, cover_letter, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		app.ID, app.ApplicantID, app.JobID, app.Status, app.CoverLetter,
		app.AppliedAt, app.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID obtiene una postulación por ID. Devuelve nil sin error cuando no existe.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*entity.JobApplication, error) {
	query := `
		SELECT id, applicant_id, job_id, status, cover_letter, applied_at, updated_at
		FROM job_applications WHERE id = $1`
	var a entity.JobApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.ApplicantID, &a.JobID, &a.Status, &a.CoverLetter,
		&a.AppliedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

// GetWithJob obtiene una postulación con los datos de su oferta y empresa.
func (r *ApplicationRepo) GetWithJob(ctx context.Context, id string) (*repository.ApplicationWithJob, error) {
	query := `SELECT ` + appJoinColumns + appJoinFrom + ` WHERE a.id = $1`
	var row repository.ApplicationWithJob
	a := &row.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.ApplicantID, &a.JobID, &a.Status, &a.CoverLetter,
		&a.AppliedAt, &a.UpdatedAt, &row.JobTitle, &row.JobLocation,
		&row.JobCompanyID, &row.CompanyName, &row.ApplicantName, &row.ApplicantEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application with job: %w", err)
	}
	return &row, nil
}

// ListByApplicant lista las postulaciones del candidato, más reciente primero.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]repository.ApplicationWithJob, error) {
	query := `SELECT ` + appJoinColumns + appJoinFrom + `
		WHERE a.applicant_id = $1 ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("list applications by applicant: %w", err)
	}
	defer rows.Close()
	return scanApplicationsWithJob(rows)
}

// ListByCompany lista las postulaciones recibidas sobre ofertas de la empresa.
func (r *ApplicationRepo) ListByCompany(ctx context.Context, companyID string) ([]repository.ApplicationWithJob, error) {
	query := `SELECT ` + appJoinColumns + appJoinFrom + `
		WHERE j.company_id = $1 ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list applications by company: %w", err)
	}
	defer rows.Close()
	return scanApplicationsWithJob(rows)
}

// ListAll lista todas las postulaciones (vista de administración).
func (r *ApplicationRepo) ListAll(ctx context.Context) ([]repository.ApplicationWithJob, error) {
	query := `SELECT ` + appJoinColumns + appJoinFrom + ` ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all applications: %w", err)
	}
	defer rows.Close()
	return scanApplicationsWithJob(rows)
}

// UpdateStatus cambia el estado solo si el actual coincide con from.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	query := `UPDATE job_applications SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update application status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanApplicationsWithJob(rows pgx.Rows) ([]repository.ApplicationWithJob, error) {
	var list []repository.ApplicationWithJob
	for rows.Next() {
		var row repository.ApplicationWithJob
		a := &row.Application
		if err := rows.Scan(
			&a.ID, &a.ApplicantID, &a.JobID, &a.Status, &a.CoverLetter,
			&a.AppliedAt, &a.UpdatedAt, &row.JobTitle, &row.JobLocation,
			&row.JobCompanyID, &row.CompanyName, &row.ApplicantName, &row.ApplicantEmail,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
