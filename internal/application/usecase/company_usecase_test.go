package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

type companyFixture struct {
	uc        *CompanyUseCase
	companies *fakeCompanyRepo
	jobs      *fakeJobRepo
	apps      *fakeApplicationRepo
}

func newCompanyFixture() *companyFixture {
	companies := &fakeCompanyRepo{}
	jobs := &fakeJobRepo{companies: companies}
	apps := &fakeApplicationRepo{jobs: jobs}
	return &companyFixture{
		uc:        NewCompanyUseCase(companies, jobs, apps),
		companies: companies,
		jobs:      jobs,
		apps:      apps,
	}
}

func (f *companyFixture) withProfile(userID string) *entity.Company {
	now := time.Now()
	c := &entity.Company{ID: "comp-" + userID, UserID: userID, CompanyName: "Acme", CreatedAt: now, UpdatedAt: now}
	f.companies.companies = append(f.companies.companies, c)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyDashboardSinPerfilDevuelveVacio(t *testing.T) {
	f := newCompanyFixture()

	out, err := f.uc.Dashboard(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Nil(t, out.Profile, "sin perfil el dashboard no expone nada más")
	assert.Empty(t, out.Jobs)
	assert.Empty(t, out.Applications)
	assert.Zero(t, out.Stats)
}

func TestCompanySaveProfileCreaYReconsulta(t *testing.T) {
	f := newCompanyFixture()

	out, err := f.uc.SaveProfile(context.Background(), "user-1", dto.SaveCompanyProfileRequest{
		CompanyName: "Globex",
		Industry:    "Tecnología",
		City:        "Medellín",
	})
	require.NoError(t, err)

	require.NotNil(t, out.Profile)
	assert.Equal(t, "Globex", out.Profile.CompanyName)
	assert.Equal(t, "Medellín", out.Profile.City)
}

func TestCompanySaveProfileActualizaExistente(t *testing.T) {
	f := newCompanyFixture()
	f.withProfile("user-1")

	out, err := f.uc.SaveProfile(context.Background(), "user-1", dto.SaveCompanyProfileRequest{
		CompanyName: "Acme Renombrada",
	})
	require.NoError(t, err)

	require.NotNil(t, out.Profile)
	assert.Equal(t, "Acme Renombrada", out.Profile.CompanyName)
	assert.Len(t, f.companies.companies, 1, "actualizar no debe duplicar el perfil")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ofertas
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyCreateJobSinPerfilFalla(t *testing.T) {
	f := newCompanyFixture()

	_, err := f.uc.CreateJob(context.Background(), "user-1", dto.SaveJobRequest{Title: "X", Description: "Y"})
	assert.ErrorIs(t, err, domain.ErrProfileRequired)
}

func TestCompanyCreateJobQuedaPendiente(t *testing.T) {
	f := newCompanyFixture()
	f.withProfile("user-1")

	out, err := f.uc.CreateJob(context.Background(), "user-1", dto.SaveJobRequest{
		Title:          "Backend Go",
		Description:    "APIs",
		SkillsRequired: "go, sql, ",
	})
	require.NoError(t, err)

	require.Len(t, out.Jobs, 1)
	assert.Equal(t, entity.JobStatusPending, out.Jobs[0].Status,
		"toda oferta nueva entra en pending hasta moderación")
	assert.Equal(t, []string{"go", "sql"}, out.Jobs[0].SkillsRequired)
	assert.Equal(t, 1, out.Stats.TotalJobs)
	assert.Equal(t, 0, out.Stats.ActiveJobs)
}

func TestCompanyUpdateJobVuelveAPendiente(t *testing.T) {
	f := newCompanyFixture()
	c := f.withProfile("user-1")
	f.jobs.jobs = append(f.jobs.jobs, &entity.Job{
		ID: "job-1", CompanyID: c.ID, Title: "Original", Status: entity.JobStatusApproved,
	})

	out, err := f.uc.UpdateJob(context.Background(), "user-1", "job-1", dto.SaveJobRequest{
		Title:       "Editada",
		Description: "Nueva descripción",
	})
	require.NoError(t, err)

	require.Len(t, out.Jobs, 1)
	assert.Equal(t, "Editada", out.Jobs[0].Title)
	assert.Equal(t, entity.JobStatusPending, out.Jobs[0].Status,
		"editar una oferta aprobada la devuelve a moderación")
}

func TestCompanyUpdateJobAjenaFalla(t *testing.T) {
	f := newCompanyFixture()
	f.withProfile("user-1")
	otra := f.withProfile("user-2")
	f.jobs.jobs = append(f.jobs.jobs, &entity.Job{ID: "job-ajena", CompanyID: otra.ID, Status: entity.JobStatusPending})

	_, err := f.uc.UpdateJob(context.Background(), "user-1", "job-ajena", dto.SaveJobRequest{
		Title: "X", Description: "Y",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompanyDeleteJob(t *testing.T) {
	f := newCompanyFixture()
	c := f.withProfile("user-1")
	f.jobs.jobs = append(f.jobs.jobs, &entity.Job{ID: "job-1", CompanyID: c.ID, Status: entity.JobStatusPending})

	out, err := f.uc.DeleteJob(context.Background(), "user-1", "job-1")
	require.NoError(t, err)
	assert.Empty(t, out.Jobs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de postulaciones
// ──────────────────────────────────────────────────────────────────────────────

func (f *companyFixture) withApplication(companyID, status string) *entity.JobApplication {
	job := &entity.Job{ID: "job-" + companyID, CompanyID: companyID, Title: "Backend", Status: entity.JobStatusApproved}
	f.jobs.jobs = append(f.jobs.jobs, job)
	app := &entity.JobApplication{ID: "app-1", ApplicantID: "ap-1", JobID: job.ID, Status: status}
	f.apps.apps = append(f.apps.apps, app)
	return app
}

func TestCompanyShortlistPostulacion(t *testing.T) {
	f := newCompanyFixture()
	c := f.withProfile("user-1")
	f.withApplication(c.ID, entity.ApplicationStatusApplied)

	out, err := f.uc.UpdateApplicationStatus(context.Background(), "user-1", "app-1", entity.ApplicationStatusShortlisted)
	require.NoError(t, err)

	require.Len(t, out.Applications, 1)
	assert.Equal(t, entity.ApplicationStatusShortlisted, out.Applications[0].Status)
	assert.Equal(t, 0, out.Stats.PendingApplications)
}

func TestCompanySeleccionDirectaDesdeAppliedFalla(t *testing.T) {
	f := newCompanyFixture()
	c := f.withProfile("user-1")
	f.withApplication(c.ID, entity.ApplicationStatusApplied)

	_, err := f.uc.UpdateApplicationStatus(context.Background(), "user-1", "app-1", entity.ApplicationStatusSelected)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"applied→selected requiere pasar por shortlisted")
}

func TestCompanyTransicionDesdeEstadoTerminalFalla(t *testing.T) {
	f := newCompanyFixture()
	c := f.withProfile("user-1")
	f.withApplication(c.ID, entity.ApplicationStatusRejected)

	_, err := f.uc.UpdateApplicationStatus(context.Background(), "user-1", "app-1", entity.ApplicationStatusShortlisted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCompanyEstadoDesconocidoFalla(t *testing.T) {
	f := newCompanyFixture()
	f.withProfile("user-1")

	_, err := f.uc.UpdateApplicationStatus(context.Background(), "user-1", "app-1", "archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyPostulacionAjenaFalla(t *testing.T) {
	f := newCompanyFixture()
	f.withProfile("user-1")
	otra := f.withProfile("user-2")
	f.withApplication(otra.ID, entity.ApplicationStatusApplied)

	_, err := f.uc.UpdateApplicationStatus(context.Background(), "user-1", "app-1", entity.ApplicationStatusShortlisted)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompanyPostulacionInexistenteFalla(t *testing.T) {
	f := newCompanyFixture()
	f.withProfile("user-1")

	_, err := f.uc.UpdateApplicationStatus(context.Background(), "user-1", "no-existe", entity.ApplicationStatusShortlisted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
