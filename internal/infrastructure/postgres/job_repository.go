package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
// skills_required se almacena como text[]; la búsqueda por solapamiento
// usa el operador && nativo del tipo.
type JobRepo struct {
	db Querier
}

// NewJobRepository construye el adaptador de persistencia para ofertas.
func NewJobRepository(db Querier) *JobRepo {
	return &JobRepo{db: db}
}

const jobColumns = `id, company_id, title, description, requirements, location,
	job_type, experience_level, salary_range, skills_required, status,
	created_at, updated_at`

// jobJoinColumns columnas de la oferta calificadas con su alias más el
// nombre de la empresa, para las vistas con JOIN.
const jobJoinColumns = `j.id, j.company_id, j.title, j.description, j.requirements,
	j.location, j.job_type, j.experience_level, j.salary_range, j.skills_required,
	j.status, j.created_at, j.updated_at, c.company_name`

// Create persiste una nueva oferta.
func (r *JobRepo) Create(ctx context.Context, job *entity.Job) error {
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.CompanyID, job.Title, job.Description, job.Requirements,
		job.Location, job.JobType, job.ExperienceLevel, job.SalaryRange,
		job.SkillsRequired, job.Status, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID. Devuelve nil sin error cuando no existe.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var j entity.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Requirements,
		&j.Location, &j.JobType, &j.ExperienceLevel, &j.SalaryRange,
		&j.SkillsRequired, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

// ListByCompany lista las ofertas de una empresa, más reciente primero.
func (r *JobRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list jobs by company: %w", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Requirements,
			&j.Location, &j.JobType, &j.ExperienceLevel, &j.SalaryRange,
			&j.SkillsRequired, &j.Status, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// ListAllWithCompany lista todas las ofertas con el nombre de su empresa,
// sin filtrar por estado (vista de administración).
func (r *JobRepo) ListAllWithCompany(ctx context.Context) ([]repository.JobWithCompany, error) {
	query := `
		SELECT ` + jobJoinColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		ORDER BY j.created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all jobs: %w", err)
	}
	defer rows.Close()
	return scanJobsWithCompany(rows)
}

// ListApproved lista ofertas aprobadas aplicando los filtros de búsqueda
// pública: substring case-insensitive sobre título/descripción y ubicación.
func (r *JobRepo) ListApproved(ctx context.Context, filter repository.JobSearchFilter) ([]repository.JobWithCompany, error) {
	query := `
		SELECT ` + jobJoinColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.status = 'approved'`
	args := []any{}
	if filter.Search != "" {
		args = append(args, filter.Search)
		n := len(args)
		query += fmt.Sprintf(" AND (j.title ILIKE '%%' || $%d || '%%' OR j.description ILIKE '%%' || $%d || '%%')", n, n)
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		query += fmt.Sprintf(" AND j.location ILIKE '%%' || $%d || '%%'", len(args))
	}
	query += " ORDER BY j.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list approved jobs: %w", err)
	}
	defer rows.Close()
	return scanJobsWithCompany(rows)
}

// ListApprovedBySkills lista ofertas aprobadas cuyo skills_required se solapa
// con las habilidades del candidato, acotado a limit filas.
func (r *JobRepo) ListApprovedBySkills(ctx context.Context, skills []string, limit int) ([]repository.JobWithCompany, error) {
	query := `
		SELECT ` + jobJoinColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.status = 'approved' AND j.skills_required && $1
		ORDER BY j.created_at DESC
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, skills, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs by skills: %w", err)
	}
	defer rows.Close()
	return scanJobsWithCompany(rows)
}

// Update actualiza el contenido y el estado de una oferta.
func (r *JobRepo) Update(ctx context.Context, job *entity.Job) error {
	query := `
		UPDATE jobs SET title = $2, description = $3, requirements = $4,
			location = $5, job_type = $6, experience_level = $7,
			salary_range = $8, skills_required = $9, status = $10,
			updated_at = $11
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Requirements, job.Location,
		job.JobType, job.ExperienceLevel, job.SalaryRange, job.SkillsRequired,
		job.Status, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado solo si el actual coincide con from.
// La cláusula WHERE sobre status serializa transiciones concurrentes:
// la segunda pierde sin afectar filas.
func (r *JobRepo) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	query := `UPDATE jobs SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update job status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina una oferta; las postulaciones caen por ON DELETE CASCADE.
func (r *JobRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func scanJobsWithCompany(rows pgx.Rows) ([]repository.JobWithCompany, error) {
	var list []repository.JobWithCompany
	for rows.Next() {
		var row repository.JobWithCompany
		j := &row.Job
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Requirements,
			&j.Location, &j.JobType, &j.ExperienceLevel, &j.SalaryRange,
			&j.SkillsRequired, &j.Status, &j.CreatedAt, &j.UpdatedAt,
			&row.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan job with company: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
