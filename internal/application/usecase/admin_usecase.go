package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// JobsReportGenerator puerto para el reporte PDF de ofertas (implementado en
// infrastructure/pdf con Maroto).
type JobsReportGenerator interface {
	GenerateJobsReport(ctx context.Context, jobs []dto.JobWithCompanyResponse, stats dto.AdminStats) ([]byte, error)
}

// AdminUseCase dashboard de administración: vista global de la plataforma,
// moderación de ofertas y exportes.
type AdminUseCase struct {
	jobRepo     repository.JobRepository
	profileRepo repository.ProfileRepository
	companyRepo repository.CompanyRepository
	appRepo     repository.ApplicationRepository
	reportGen   JobsReportGenerator
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(
	jobRepo repository.JobRepository,
	profileRepo repository.ProfileRepository,
	companyRepo repository.CompanyRepository,
	appRepo repository.ApplicationRepository,
	reportGen JobsReportGenerator,
) *AdminUseCase {
	return &AdminUseCase{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		companyRepo: companyRepo,
		appRepo:     appRepo,
		reportGen:   reportGen,
	}
}

// Dashboard arma la carga completa del panel de administración.
//
// Cuatro consultas en paralelo:
//  1. todas las ofertas con nombre de empresa
//  2. todos los perfiles con su rol
//  3. todas las empresas
//  4. todas las postulaciones
//
// Los contadores se derivan del conjunto ya traído, no de consultas COUNT.
func (uc *AdminUseCase) Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	type jobsResult struct {
		rows []repository.JobWithCompany
		err  error
	}
	type usersResult struct {
		rows []repository.ProfileWithRole
		err  error
	}
	type companiesResult struct {
		rows []*entity.Company
		err  error
	}
	type appsResult struct {
		rows []repository.ApplicationWithJob
		err  error
	}

	jobsCh := make(chan jobsResult, 1)
	usersCh := make(chan usersResult, 1)
	companiesCh := make(chan companiesResult, 1)
	appsCh := make(chan appsResult, 1)

	go func() {
		rows, err := uc.jobRepo.ListAllWithCompany(ctx)
		jobsCh <- jobsResult{rows, err}
	}()
	go func() {
		rows, err := uc.profileRepo.ListWithRole(ctx)
		usersCh <- usersResult{rows, err}
	}()
	go func() {
		rows, err := uc.companyRepo.List(ctx)
		companiesCh <- companiesResult{rows, err}
	}()
	go func() {
		rows, err := uc.appRepo.ListAll(ctx)
		appsCh <- appsResult{rows, err}
	}()

	jobs := <-jobsCh
	users := <-usersCh
	companies := <-companiesCh
	apps := <-appsCh

	if jobs.err != nil {
		return nil, fmt.Errorf("dashboard admin: ofertas: %w", jobs.err)
	}
	if users.err != nil {
		return nil, fmt.Errorf("dashboard admin: usuarios: %w", users.err)
	}
	if companies.err != nil {
		return nil, fmt.Errorf("dashboard admin: empresas: %w", companies.err)
	}
	if apps.err != nil {
		return nil, fmt.Errorf("dashboard admin: postulaciones: %w", apps.err)
	}

	companyResponses := make([]dto.CompanyResponse, 0, len(companies.rows))
	for _, c := range companies.rows {
		companyResponses = append(companyResponses, *toCompanyResponse(c))
	}

	stats := dto.AdminStats{
		TotalJobs:         len(jobs.rows),
		TotalUsers:        len(users.rows),
		TotalCompanies:    len(companies.rows),
		TotalApplications: len(apps.rows),
	}
	for i := range jobs.rows {
		switch jobs.rows[i].Job.Status {
		case entity.JobStatusPending:
			stats.PendingJobs++
		case entity.JobStatusApproved:
			stats.ApprovedJobs++
		}
	}

	return &dto.AdminDashboardResponse{
		Jobs:         toJobWithCompanyResponses(jobs.rows),
		Users:        toAdminUserRows(users.rows),
		Companies:    companyResponses,
		Applications: toCompanyApplicationResponses(apps.rows),
		Stats:        stats,
	}, nil
}

// ApproveJob aprueba una oferta pendiente y devuelve el dashboard re-consultado.
func (uc *AdminUseCase) ApproveJob(ctx context.Context, jobID string) (*dto.AdminDashboardResponse, error) {
	return uc.transitionJob(ctx, jobID, entity.JobStatusApproved)
}

// RejectJob rechaza una oferta desde cualquier estado (re-rechazar es un
// no-op idempotente) y devuelve el dashboard re-consultado.
func (uc *AdminUseCase) RejectJob(ctx context.Context, jobID string) (*dto.AdminDashboardResponse, error) {
	return uc.transitionJob(ctx, jobID, entity.JobStatusRejected)
}

// transitionJob valida la máquina de estados de la oferta y aplica el cambio
// con una actualización condicionada al estado observado. Si otra sesión se
// adelantó, la fila ya no coincide y se devuelve ErrConflict sin escribir.
func (uc *AdminUseCase) transitionJob(ctx context.Context, jobID, to string) (*dto.AdminDashboardResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransitionJobStatus(job.Status, to) {
		return nil, domain.ErrInvalidTransition
	}
	ok, err := uc.jobRepo.UpdateStatus(ctx, jobID, job.Status, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrConflict
	}
	// Política de consistencia: re-consultar el conjunto completo tras la mutación.
	return uc.Dashboard(ctx)
}

// JobsCSV exporta todas las ofertas como CSV (una fila por registro).
func (uc *AdminUseCase) JobsCSV(ctx context.Context) ([]string, [][]string, error) {
	rows, err := uc.jobRepo.ListAllWithCompany(ctx)
	if err != nil {
		return nil, nil, err
	}
	header := []string{"id", "title", "company_name", "status", "location", "job_type", "experience_level", "salary_range", "created_at"}
	records := make([][]string, 0, len(rows))
	for i := range rows {
		j := &rows[i].Job
		records = append(records, []string{
			j.ID, j.Title, rows[i].CompanyName, j.Status, j.Location,
			j.JobType, j.ExperienceLevel, j.SalaryRange, j.CreatedAt.Format(time.RFC3339),
		})
	}
	return header, records, nil
}

// CompaniesCSV exporta todas las empresas como CSV.
func (uc *AdminUseCase) CompaniesCSV(ctx context.Context) ([]string, [][]string, error) {
	rows, err := uc.companyRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	header := []string{"id", "company_name", "industry", "company_size", "website", "city", "state", "country", "created_at"}
	records := make([][]string, 0, len(rows))
	for _, c := range rows {
		records = append(records, []string{
			c.ID, c.CompanyName, c.Industry, c.CompanySize, c.Website,
			c.City, c.State, c.Country, c.CreatedAt.Format(time.RFC3339),
		})
	}
	return header, records, nil
}

// ApplicationsCSV exporta todas las postulaciones como CSV.
func (uc *AdminUseCase) ApplicationsCSV(ctx context.Context) ([]string, [][]string, error) {
	rows, err := uc.appRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	header := []string{"id", "job_id", "job_title", "applicant_name", "applicant_email", "status", "applied_at"}
	records := make([][]string, 0, len(rows))
	for i := range rows {
		a := &rows[i].Application
		records = append(records, []string{
			a.ID, a.JobID, rows[i].JobTitle, rows[i].ApplicantName,
			rows[i].ApplicantEmail, a.Status, a.AppliedAt.Format(time.RFC3339),
		})
	}
	return header, records, nil
}

// JobsPDF genera el reporte PDF de ofertas de la plataforma.
func (uc *AdminUseCase) JobsPDF(ctx context.Context) ([]byte, error) {
	dash, err := uc.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return uc.reportGen.GenerateJobsReport(ctx, dash.Jobs, dash.Stats)
}
