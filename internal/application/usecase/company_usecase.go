package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// CompanyUseCase dashboard de empresa: perfil propio, CRUD de ofertas y
// gestión de postulaciones sobre ofertas propias.
//
// Toda mutación termina re-consultando el conjunto completo del dashboard:
// es la política de consistencia más simple que garantiza que la vista nunca
// muestre estado aplicado-y-revertido.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	jobRepo     repository.JobRepository
	appRepo     repository.ApplicationRepository
}

// NewCompanyUseCase construye el caso de uso de empresa.
func NewCompanyUseCase(
	companyRepo repository.CompanyRepository,
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, jobRepo: jobRepo, appRepo: appRepo}
}

// Dashboard arma la carga del panel de empresa para el usuario dueño.
// Sin perfil de empresa devuelve solo Profile=nil: el flujo "crear perfil
// primero" bloquea ofertas y postulaciones hasta que exista.
func (uc *CompanyUseCase) Dashboard(ctx context.Context, userID string) (*dto.CompanyDashboardResponse, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CompanyDashboardResponse{
		Jobs:         []dto.JobResponse{},
		Applications: []dto.CompanyApplicationResponse{},
	}
	if company == nil {
		return resp, nil
	}
	resp.Profile = toCompanyResponse(company)

	jobs, err := uc.jobRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	apps, err := uc.appRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(j))
		if j.Status == entity.JobStatusApproved {
			resp.Stats.ActiveJobs++
		}
	}
	resp.Applications = toCompanyApplicationResponses(apps)
	for i := range apps {
		if apps[i].Application.Status == entity.ApplicationStatusApplied {
			resp.Stats.PendingApplications++
		}
	}
	resp.Stats.TotalJobs = len(jobs)
	resp.Stats.TotalApplications = len(apps)
	return resp, nil
}

// SaveProfile crea el perfil de empresa si no existe o lo actualiza si ya
// existe (solo el dueño llega aquí: el scoping es por userID de la sesión).
func (uc *CompanyUseCase) SaveProfile(ctx context.Context, userID string, in dto.SaveCompanyProfileRequest) (*dto.CompanyDashboardResponse, error) {
	existing, err := uc.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if existing == nil {
		company := &entity.Company{
			ID:          uuid.New().String(),
			UserID:      userID,
			CompanyName: in.CompanyName,
			Industry:    in.Industry,
			CompanySize: in.CompanySize,
			Website:     in.Website,
			Description: in.Description,
			Address:     in.Address,
			City:        in.City,
			State:       in.State,
			Country:     in.Country,
			LogoURL:     in.LogoURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.companyRepo.Create(ctx, company); err != nil {
			return nil, err
		}
	} else {
		existing.CompanyName = in.CompanyName
		existing.Industry = in.Industry
		existing.CompanySize = in.CompanySize
		existing.Website = in.Website
		existing.Description = in.Description
		existing.Address = in.Address
		existing.City = in.City
		existing.State = in.State
		existing.Country = in.Country
		existing.LogoURL = in.LogoURL
		existing.UpdatedAt = now
		if err := uc.companyRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}
	return uc.Dashboard(ctx, userID)
}

// CreateJob publica una oferta nueva. El estado inicial SIEMPRE es pending,
// venga lo que venga del cliente; solo el admin la aprueba.
func (uc *CompanyUseCase) CreateJob(ctx context.Context, userID string, in dto.SaveJobRequest) (*dto.CompanyDashboardResponse, error) {
	company, err := uc.requireCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	job := &entity.Job{
		ID:              uuid.New().String(),
		CompanyID:       company.ID,
		Title:           in.Title,
		Description:     in.Description,
		Requirements:    in.Requirements,
		Location:        in.Location,
		JobType:         in.JobType,
		ExperienceLevel: in.ExperienceLevel,
		SalaryRange:     in.SalaryRange,
		SkillsRequired:  dto.ParseSkillList(in.SkillsRequired),
		Status:          entity.JobStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return uc.Dashboard(ctx, userID)
}

// UpdateJob edita el contenido de una oferta propia. La edición vuelve a
// dejar la oferta en pending: todo cambio pasa de nuevo por moderación.
func (uc *CompanyUseCase) UpdateJob(ctx context.Context, userID, jobID string, in dto.SaveJobRequest) (*dto.CompanyDashboardResponse, error) {
	company, err := uc.requireCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	job, err := uc.ownedJob(ctx, company.ID, jobID)
	if err != nil {
		return nil, err
	}
	job.Title = in.Title
	job.Description = in.Description
	job.Requirements = in.Requirements
	job.Location = in.Location
	job.JobType = in.JobType
	job.ExperienceLevel = in.ExperienceLevel
	job.SalaryRange = in.SalaryRange
	job.SkillsRequired = dto.ParseSkillList(in.SkillsRequired)
	job.Status = entity.JobStatusPending
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return uc.Dashboard(ctx, userID)
}

// DeleteJob elimina una oferta propia. Las postulaciones asociadas caen en
// cascada (ON DELETE CASCADE en la tabla).
func (uc *CompanyUseCase) DeleteJob(ctx context.Context, userID, jobID string) (*dto.CompanyDashboardResponse, error) {
	company, err := uc.requireCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedJob(ctx, company.ID, jobID); err != nil {
		return nil, err
	}
	if err := uc.jobRepo.Delete(ctx, jobID); err != nil {
		return nil, err
	}
	return uc.Dashboard(ctx, userID)
}

// UpdateApplicationStatus aplica una transición de estado sobre una
// postulación a una oferta propia. La transición se valida primero en memoria
// (respuesta rápida al usuario) y el UPDATE queda condicionado al estado
// observado, de modo que dos sesiones concurrentes no puedan aplicar dos
// transiciones incompatibles.
func (uc *CompanyUseCase) UpdateApplicationStatus(ctx context.Context, userID, applicationID, status string) (*dto.CompanyDashboardResponse, error) {
	if !entity.ValidApplicationStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.requireCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	row, err := uc.appRepo.GetWithJob(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if row.JobCompanyID != company.ID {
		return nil, domain.ErrForbidden
	}
	if !entity.CanTransitionApplicationStatus(row.Application.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	ok, err := uc.appRepo.UpdateStatus(ctx, applicationID, row.Application.Status, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrConflict
	}
	return uc.Dashboard(ctx, userID)
}

func (uc *CompanyUseCase) requireCompany(ctx context.Context, userID string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrProfileRequired
	}
	return company, nil
}

func (uc *CompanyUseCase) ownedJob(ctx context.Context, companyID, jobID string) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if job.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return job, nil
}
