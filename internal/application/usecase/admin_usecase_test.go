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
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// stubReportGen registra la llamada y devuelve bytes fijos.
type stubReportGen struct {
	called bool
	jobs   int
}

func (s *stubReportGen) GenerateJobsReport(_ context.Context, jobs []dto.JobWithCompanyResponse, _ dto.AdminStats) ([]byte, error) {
	s.called = true
	s.jobs = len(jobs)
	return []byte("%PDF-stub"), nil
}

func newAdminFixture() (*AdminUseCase, *fakeJobRepo, *stubReportGen) {
	companies := &fakeCompanyRepo{}
	jobs := &fakeJobRepo{companies: companies}
	apps := &fakeApplicationRepo{jobs: jobs}
	profiles := &fakeProfileRepo{}
	gen := &stubReportGen{}

	now := time.Now()
	companies.companies = append(companies.companies, &entity.Company{
		ID: "comp-1", UserID: "user-c1", CompanyName: "Acme", CreatedAt: now, UpdatedAt: now,
	})
	jobs.jobs = append(jobs.jobs,
		&entity.Job{ID: "job-pending", CompanyID: "comp-1", Title: "Backend Go", Status: entity.JobStatusPending, CreatedAt: now, UpdatedAt: now},
		&entity.Job{ID: "job-approved", CompanyID: "comp-1", Title: "Data Engineer", Status: entity.JobStatusApproved, CreatedAt: now, UpdatedAt: now},
		&entity.Job{ID: "job-rejected", CompanyID: "comp-1", Title: "Diseño", Status: entity.JobStatusRejected, CreatedAt: now, UpdatedAt: now},
	)
	profiles.rows = []repository.ProfileWithRole{
		{ID: "p1", UserID: "user-c1", FullName: "Dueña Acme", Role: "company", CreatedAt: now},
		{ID: "p2", UserID: "user-a1", FullName: "Ana Gómez", Role: "applicant", CreatedAt: now},
	}

	return NewAdminUseCase(jobs, profiles, companies, apps, gen), jobs, gen
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminDashboardAgregaContadores(t *testing.T) {
	uc, _, _ := newAdminFixture()

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Len(t, out.Jobs, 3)
	assert.Len(t, out.Users, 2)
	assert.Len(t, out.Companies, 1)
	assert.Equal(t, dto.AdminStats{
		TotalJobs:      3,
		PendingJobs:    1,
		ApprovedJobs:   1,
		TotalUsers:     2,
		TotalCompanies: 1,
	}, out.Stats)
	assert.Equal(t, "Acme", out.Jobs[0].CompanyName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Moderación de ofertas
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminApproveJobPendiente(t *testing.T) {
	uc, jobs, _ := newAdminFixture()

	out, err := uc.ApproveJob(context.Background(), "job-pending")
	require.NoError(t, err)

	// El resultado es el dashboard re-consultado con el nuevo estado.
	assert.Equal(t, 2, out.Stats.ApprovedJobs)
	assert.Equal(t, 0, out.Stats.PendingJobs)
	job, _ := jobs.GetByID(context.Background(), "job-pending")
	assert.Equal(t, entity.JobStatusApproved, job.Status)
}

func TestAdminRejectJobDesdeCualquierEstado(t *testing.T) {
	uc, jobs, _ := newAdminFixture()

	// approved → rejected está permitido (retiro de oferta ya publicada)
	_, err := uc.RejectJob(context.Background(), "job-approved")
	require.NoError(t, err)
	job, _ := jobs.GetByID(context.Background(), "job-approved")
	assert.Equal(t, entity.JobStatusRejected, job.Status)
}

func TestAdminApproveJobYaRechazadaFalla(t *testing.T) {
	uc, _, _ := newAdminFixture()

	_, err := uc.ApproveJob(context.Background(), "job-rejected")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Rechazar dos veces la misma oferta no es un error: el segundo rechazo es
// un no-op que responde igual que el primero (doble clic del admin).
func TestAdminRejectJobYaRechazadaEsIdempotente(t *testing.T) {
	uc, jobs, _ := newAdminFixture()

	out, err := uc.RejectJob(context.Background(), "job-rejected")
	require.NoError(t, err)
	job, _ := jobs.GetByID(context.Background(), "job-rejected")
	assert.Equal(t, entity.JobStatusRejected, job.Status)
	assert.Equal(t, 1, out.Stats.ApprovedJobs, "el resto del dashboard no cambia")
}

func TestAdminApproveJobInexistente(t *testing.T) {
	uc, _, _ := newAdminFixture()

	_, err := uc.ApproveJob(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// raceJobRepo simula que otra sesión cambió el estado entre la lectura y el UPDATE.
type raceJobRepo struct {
	*fakeJobRepo
}

func (r *raceJobRepo) UpdateStatus(_ context.Context, _, _, _ string) (bool, error) {
	return false, nil
}

func TestAdminApproveJobPerdioLaCarrera(t *testing.T) {
	companies := &fakeCompanyRepo{}
	jobs := &fakeJobRepo{companies: companies}
	jobs.jobs = append(jobs.jobs, &entity.Job{ID: "job-1", CompanyID: "c", Status: entity.JobStatusPending})
	uc := NewAdminUseCase(
		&raceJobRepo{jobs}, &fakeProfileRepo{}, companies,
		&fakeApplicationRepo{jobs: jobs}, &stubReportGen{},
	)

	_, err := uc.ApproveJob(context.Background(), "job-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportes
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminJobsCSV(t *testing.T) {
	uc, _, _ := newAdminFixture()

	header, records, err := uc.JobsCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id", header[0])
	require.Len(t, records, 3)
	assert.Equal(t, "job-pending", records[0][0])
	assert.Equal(t, "Acme", records[0][2])
}

func TestAdminCompaniesCSV(t *testing.T) {
	uc, _, _ := newAdminFixture()

	_, records, err := uc.CompaniesCSV(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0][1])
}

func TestAdminApplicationsCSVSinRegistros(t *testing.T) {
	uc, _, _ := newAdminFixture()

	_, records, err := uc.ApplicationsCSV(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAdminJobsPDFDelegaEnElGenerador(t *testing.T) {
	uc, _, gen := newAdminFixture()

	out, err := uc.JobsPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), out)
	assert.True(t, gen.called)
	assert.Equal(t, 3, gen.jobs)
}
