package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios falsos en memoria para los casos de uso.
// Preservan orden de inserción; los listados "más reciente primero" se emulan
// insertando en el orden que el test necesita.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies []*entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	f.companies = append(f.companies, &cp)
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) GetByUserID(_ context.Context, userID string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	for i, existing := range f.companies {
		if existing.ID == c.ID {
			cp := *c
			f.companies[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	out := make([]*entity.Company, len(f.companies))
	copy(out, f.companies)
	return out, nil
}

func (f *fakeCompanyRepo) nameOf(companyID string) string {
	for _, c := range f.companies {
		if c.ID == companyID {
			return c.CompanyName
		}
	}
	return ""
}

type fakeApplicantRepo struct {
	profiles []*entity.ApplicantProfile
}

func (f *fakeApplicantRepo) Create(_ context.Context, p *entity.ApplicantProfile) error {
	cp := *p
	f.profiles = append(f.profiles, &cp)
	return nil
}

func (f *fakeApplicantRepo) GetByUserID(_ context.Context, userID string) (*entity.ApplicantProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicantRepo) Update(_ context.Context, p *entity.ApplicantProfile) error {
	for i, existing := range f.profiles {
		if existing.ID == p.ID {
			cp := *p
			f.profiles[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeProfileRepo struct {
	rows []repository.ProfileWithRole
}

func (f *fakeProfileRepo) Create(_ context.Context, _ *entity.Profile) error  { return nil }
func (f *fakeProfileRepo) Update(_ context.Context, _ *entity.Profile) error  { return nil }
func (f *fakeProfileRepo) GetByUserID(_ context.Context, _ string) (*entity.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) ListWithRole(_ context.Context) ([]repository.ProfileWithRole, error) {
	return f.rows, nil
}

type fakeJobRepo struct {
	jobs      []*entity.Job
	companies *fakeCompanyRepo
}

func (f *fakeJobRepo) Create(_ context.Context, job *entity.Job) error {
	cp := *job
	f.jobs = append(f.jobs, &cp)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*entity.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range f.jobs {
		if j.CompanyID == companyID {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListAllWithCompany(_ context.Context) ([]repository.JobWithCompany, error) {
	out := make([]repository.JobWithCompany, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, repository.JobWithCompany{Job: *j, CompanyName: f.companies.nameOf(j.CompanyID)})
	}
	return out, nil
}

func (f *fakeJobRepo) ListApproved(_ context.Context, filter repository.JobSearchFilter) ([]repository.JobWithCompany, error) {
	var out []repository.JobWithCompany
	for _, j := range f.jobs {
		if j.Status != entity.JobStatusApproved {
			continue
		}
		if filter.Search != "" && !containsFold(j.Title, filter.Search) && !containsFold(j.Description, filter.Search) {
			continue
		}
		if filter.Location != "" && !containsFold(j.Location, filter.Location) {
			continue
		}
		out = append(out, repository.JobWithCompany{Job: *j, CompanyName: f.companies.nameOf(j.CompanyID)})
	}
	return out, nil
}

func (f *fakeJobRepo) ListApprovedBySkills(_ context.Context, skills []string, limit int) ([]repository.JobWithCompany, error) {
	var out []repository.JobWithCompany
	for _, j := range f.jobs {
		if j.Status != entity.JobStatusApproved || !overlaps(j.SkillsRequired, skills) {
			continue
		}
		out = append(out, repository.JobWithCompany{Job: *j, CompanyName: f.companies.nameOf(j.CompanyID)})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *entity.Job) error {
	for i, existing := range f.jobs {
		if existing.ID == job.ID {
			cp := *job
			f.jobs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeJobRepo) UpdateStatus(_ context.Context, id, from, to string) (bool, error) {
	for _, j := range f.jobs {
		if j.ID == id && j.Status == from {
			j.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id string) error {
	for i, j := range f.jobs {
		if j.ID == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeApplicationRepo struct {
	apps    []*entity.JobApplication
	jobs    *fakeJobRepo
	creates int // escrituras realizadas, para verificar no-ops
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *entity.JobApplication) error {
	for _, existing := range f.apps {
		if existing.ApplicantID == app.ApplicantID && existing.JobID == app.JobID {
			return domain.ErrAlreadyApplied
		}
	}
	cp := *app
	f.apps = append(f.apps, &cp)
	f.creates++
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (*entity.JobApplication, error) {
	for _, a := range f.apps {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationRepo) GetWithJob(_ context.Context, id string) (*repository.ApplicationWithJob, error) {
	for _, a := range f.apps {
		if a.ID == id {
			return f.join(a), nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]repository.ApplicationWithJob, error) {
	var out []repository.ApplicationWithJob
	for _, a := range f.apps {
		if a.ApplicantID == applicantID {
			out = append(out, *f.join(a))
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByCompany(_ context.Context, companyID string) ([]repository.ApplicationWithJob, error) {
	var out []repository.ApplicationWithJob
	for _, a := range f.apps {
		row := f.join(a)
		if row.JobCompanyID == companyID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListAll(_ context.Context) ([]repository.ApplicationWithJob, error) {
	out := make([]repository.ApplicationWithJob, 0, len(f.apps))
	for _, a := range f.apps {
		out = append(out, *f.join(a))
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id, from, to string) (bool, error) {
	for _, a := range f.apps {
		if a.ID == id && a.Status == from {
			a.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) join(a *entity.JobApplication) *repository.ApplicationWithJob {
	row := &repository.ApplicationWithJob{Application: *a}
	for _, j := range f.jobs.jobs {
		if j.ID == a.JobID {
			row.JobTitle = j.Title
			row.JobLocation = j.Location
			row.JobCompanyID = j.CompanyID
			row.CompanyName = f.jobs.companies.nameOf(j.CompanyID)
			break
		}
	}
	return row
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
