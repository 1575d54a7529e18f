package dto

import "time"

// ApplyRequest entrada de POST /api/applicant/jobs/:id/apply.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// UpdateApplicationStatusRequest entrada de PATCH /api/company/applications/:id/status.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=shortlisted selected rejected"`
}

// ApplicationResponse salida base de una postulación.
type ApplicationResponse struct {
	ID          string    `json:"id"`
	ApplicantID string    `json:"applicant_id"`
	JobID       string    `json:"job_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ApplicantApplicationResponse postulación vista por el candidato:
// incluye título/ubicación de la oferta y nombre de la empresa.
type ApplicantApplicationResponse struct {
	ApplicationResponse
	JobTitle    string `json:"job_title"`
	JobLocation string `json:"job_location"`
	CompanyName string `json:"company_name"`
}

// CompanyApplicationResponse postulación vista por la empresa:
// incluye título de la oferta y datos de contacto del candidato.
type CompanyApplicationResponse struct {
	ApplicationResponse
	JobTitle       string `json:"job_title"`
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
}
