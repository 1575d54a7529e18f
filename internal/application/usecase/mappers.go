package usecase

import (
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

func toJobResponse(j *entity.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:              j.ID,
		CompanyID:       j.CompanyID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		SalaryRange:     j.SalaryRange,
		SkillsRequired:  j.SkillsRequired,
		Status:          j.Status,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func toJobWithCompanyResponses(rows []repository.JobWithCompany) []dto.JobWithCompanyResponse {
	out := make([]dto.JobWithCompanyResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.JobWithCompanyResponse{
			JobResponse: toJobResponse(&rows[i].Job),
			CompanyName: rows[i].CompanyName,
		})
	}
	return out
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		CompanyName: c.CompanyName,
		Industry:    c.Industry,
		CompanySize: c.CompanySize,
		Website:     c.Website,
		Description: c.Description,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		Country:     c.Country,
		LogoURL:     c.LogoURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toApplicantProfileResponse(p *entity.ApplicantProfile) *dto.ApplicantProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ApplicantProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Bio:             p.Bio,
		Skills:          p.Skills,
		ExperienceYears: p.ExperienceYears,
		Education:       p.Education,
		Location:        p.Location,
		ResumeURL:       p.ResumeURL,
		JobPreferences:  p.JobPreferences,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toApplicationResponse(a *entity.JobApplication) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          a.ID,
		ApplicantID: a.ApplicantID,
		JobID:       a.JobID,
		Status:      a.Status,
		CoverLetter: a.CoverLetter,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toApplicantApplicationResponses(rows []repository.ApplicationWithJob) []dto.ApplicantApplicationResponse {
	out := make([]dto.ApplicantApplicationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ApplicantApplicationResponse{
			ApplicationResponse: toApplicationResponse(&rows[i].Application),
			JobTitle:            rows[i].JobTitle,
			JobLocation:         rows[i].JobLocation,
			CompanyName:         rows[i].CompanyName,
		})
	}
	return out
}

func toCompanyApplicationResponses(rows []repository.ApplicationWithJob) []dto.CompanyApplicationResponse {
	out := make([]dto.CompanyApplicationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.CompanyApplicationResponse{
			ApplicationResponse: toApplicationResponse(&rows[i].Application),
			JobTitle:            rows[i].JobTitle,
			ApplicantName:       rows[i].ApplicantName,
			ApplicantEmail:      rows[i].ApplicantEmail,
		})
	}
	return out
}

func toAdminUserRows(rows []repository.ProfileWithRole) []dto.AdminUserRow {
	out := make([]dto.AdminUserRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminUserRow{
			ID:        r.ID,
			UserID:    r.UserID,
			FullName:  r.FullName,
			Email:     r.Email,
			Phone:     r.Phone,
			Role:      r.Role,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
