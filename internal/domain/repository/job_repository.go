package repository

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// JobWithCompany fila cruda de una oferta con el nombre de su empresa (JOIN companies).
type JobWithCompany struct {
	Job         entity.Job
	CompanyName string
}

// JobSearchFilter filtros de búsqueda pública de ofertas aprobadas.
// Search aplica substring case-insensitive sobre título y descripción;
// Location sobre la ubicación. Vacío = sin filtro.
type JobSearchFilter struct {
	Search   string
	Location string
}

// JobRepository puerto de persistencia para ofertas de empleo.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Job, error)
	// ListAllWithCompany lista todas las ofertas con nombre de empresa (vista admin).
	ListAllWithCompany(ctx context.Context) ([]JobWithCompany, error)
	// ListApproved lista ofertas aprobadas con nombre de empresa, orden created_at DESC.
	ListApproved(ctx context.Context, filter JobSearchFilter) ([]JobWithCompany, error)
	// ListApprovedBySkills lista ofertas aprobadas cuyo skills_required se solapa
	// con skills (operador && de text[]), orden created_at DESC, máximo limit.
	ListApprovedBySkills(ctx context.Context, skills []string, limit int) ([]JobWithCompany, error)
	Update(ctx context.Context, job *entity.Job) error
	// UpdateStatus cambia el estado solo si el estado actual coincide con from
	// (guardia de serialización contra transiciones concurrentes).
	// Devuelve false sin error cuando ninguna fila coincidió.
	UpdateStatus(ctx context.Context, id, from, to string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// ApplicationWithJob fila cruda de una postulación con datos de su oferta
// y, segun la vista, del candidato (JOIN jobs/companies/applicant_profiles/profiles).
type ApplicationWithJob struct {
	Application    entity.JobApplication
	JobTitle       string
	JobLocation    string
	JobCompanyID   string
	CompanyName    string
	ApplicantName  string
	ApplicantEmail string
}

// ApplicationRepository puerto de persistencia para postulaciones.
type ApplicationRepository interface {
	// Create persiste una postulación nueva. La restricción UNIQUE
	// (applicant_id, job_id) de la tabla traduce el duplicado a
	// domain.ErrAlreadyApplied.
	Create(ctx context.Context, app *entity.JobApplication) error
	GetByID(ctx context.Context, id string) (*entity.JobApplication, error)
	// GetWithJob obtiene una postulación junto con la empresa dueña de la oferta
	// (para validar propiedad antes de una transición).
	GetWithJob(ctx context.Context, id string) (*ApplicationWithJob, error)
	// ListByApplicant lista las postulaciones del candidato con oferta y empresa,
	// orden applied_at DESC.
	ListByApplicant(ctx context.Context, applicantID string) ([]ApplicationWithJob, error)
	// ListByCompany lista las postulaciones sobre ofertas de la empresa con
	// nombre y email del candidato, orden applied_at DESC.
	ListByCompany(ctx context.Context, companyID string) ([]ApplicationWithJob, error)
	ListAll(ctx context.Context) ([]ApplicationWithJob, error)
	// UpdateStatus cambia el estado solo si el actual coincide con from.
	// Devuelve false sin error cuando ninguna fila coincidió.
	UpdateStatus(ctx context.Context, id, from, to string) (bool, error)
}
