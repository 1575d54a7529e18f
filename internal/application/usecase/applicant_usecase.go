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

// maxRecommendations tope de ofertas recomendadas en el dashboard de candidato.
const maxRecommendations = 5

// ApplicantUseCase dashboard de candidato: perfil propio, búsqueda de ofertas
// aprobadas, postulaciones propias y recomendaciones por solape de habilidades.
type ApplicantUseCase struct {
	applicantRepo repository.ApplicantRepository
	jobRepo       repository.JobRepository
	appRepo       repository.ApplicationRepository
}

// NewApplicantUseCase construye el caso de uso de candidato.
func NewApplicantUseCase(
	applicantRepo repository.ApplicantRepository,
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
) *ApplicantUseCase {
	return &ApplicantUseCase{applicantRepo: applicantRepo, jobRepo: jobRepo, appRepo: appRepo}
}

// Dashboard arma la carga del panel de candidato.
//
// Las ofertas aprobadas se listan siempre (con o sin perfil). Postulaciones y
// recomendaciones exigen perfil; las recomendaciones además exigen al menos
// una habilidad registrada — con cero habilidades la lista queda vacía, no se
// calcula un "solape con todo".
func (uc *ApplicantUseCase) Dashboard(ctx context.Context, userID string, filter repository.JobSearchFilter) (*dto.ApplicantDashboardResponse, error) {
	profile, err := uc.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := uc.jobRepo.ListApproved(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ApplicantDashboardResponse{
		Profile:         toApplicantProfileResponse(profile),
		Jobs:            toJobWithCompanyResponses(jobs),
		Applications:    []dto.ApplicantApplicationResponse{},
		Recommendations: []dto.JobWithCompanyResponse{},
	}
	if profile == nil {
		return resp, nil
	}

	apps, err := uc.appRepo.ListByApplicant(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	resp.Applications = toApplicantApplicationResponses(apps)
	for i := range apps {
		switch apps[i].Application.Status {
		case entity.ApplicationStatusApplied:
			resp.Stats.PendingApplications++
		case entity.ApplicationStatusShortlisted:
			resp.Stats.Shortlisted++
		case entity.ApplicationStatusSelected:
			resp.Stats.Selected++
		}
	}
	resp.Stats.TotalApplications = len(apps)

	if len(profile.Skills) > 0 {
		recs, err := uc.jobRepo.ListApprovedBySkills(ctx, profile.Skills, maxRecommendations)
		if err != nil {
			return nil, err
		}
		resp.Recommendations = toJobWithCompanyResponses(recs)
	}
	return resp, nil
}

// SaveProfile crea o actualiza el perfil del candidato. Skills llega separada
// por comas y se normaliza (trim, sin entradas vacías) antes de persistir.
func (uc *ApplicantUseCase) SaveProfile(ctx context.Context, userID string, in dto.SaveApplicantProfileRequest) (*dto.ApplicantDashboardResponse, error) {
	existing, err := uc.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	skills := dto.ParseSkillList(in.Skills)
	if existing == nil {
		profile := &entity.ApplicantProfile{
			ID:              uuid.New().String(),
			UserID:          userID,
			Bio:             in.Bio,
			Skills:          skills,
			ExperienceYears: in.ExperienceYears,
			Education:       in.Education,
			Location:        in.Location,
			ResumeURL:       in.ResumeURL,
			JobPreferences:  in.JobPreferences,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := uc.applicantRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		existing.Bio = in.Bio
		existing.Skills = skills
		existing.ExperienceYears = in.ExperienceYears
		existing.Education = in.Education
		existing.Location = in.Location
		existing.ResumeURL = in.ResumeURL
		existing.JobPreferences = in.JobPreferences
		existing.UpdatedAt = now
		if err := uc.applicantRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}
	return uc.Dashboard(ctx, userID, repository.JobSearchFilter{})
}

// Apply postula al candidato a una oferta con estado inicial applied.
//
// Sin perfil no hay postulación (ErrProfileRequired). El duplicado se detecta
// recorriendo la lista de postulaciones ya traída del propio candidato — es
// el fast-path de UX; la restricción UNIQUE (applicant_id, job_id) de la
// tabla sigue siendo el punto real de enforcement ante carreras.
func (uc *ApplicantUseCase) Apply(ctx context.Context, userID, jobID, coverLetter string) (*dto.ApplicantDashboardResponse, error) {
	profile, err := uc.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileRequired
	}

	apps, err := uc.appRepo.ListByApplicant(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].Application.JobID == jobID {
			return nil, domain.ErrAlreadyApplied
		}
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	app := &entity.JobApplication{
		ID:          uuid.New().String(),
		ApplicantID: profile.ID,
		JobID:       jobID,
		Status:      entity.ApplicationStatusApplied,
		CoverLetter: coverLetter,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return uc.Dashboard(ctx, userID, repository.JobSearchFilter{})
}

// SearchJobs búsqueda pública de ofertas aprobadas (sin sesión).
func (uc *ApplicantUseCase) SearchJobs(ctx context.Context, filter repository.JobSearchFilter) ([]dto.JobWithCompanyResponse, error) {
	jobs, err := uc.jobRepo.ListApproved(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toJobWithCompanyResponses(jobs), nil
}
