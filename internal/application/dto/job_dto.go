package dto

import "time"

// SaveJobRequest crea o actualiza una oferta. El estado NUNCA viene del
// cliente: toda creación o edición queda en pending hasta moderación.
// SkillsRequired llega separada por comas y se normaliza antes de persistir.
type SaveJobRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	Description     string `json:"description" validate:"required"`
	Requirements    string `json:"requirements"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SalaryRange     string `json:"salary_range"`
	SkillsRequired  string `json:"skills_required"`
}

// JobResponse salida de una oferta (vista de la empresa dueña).
type JobResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	SalaryRange     string    `json:"salary_range"`
	SkillsRequired  []string  `json:"skills_required"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobWithCompanyResponse oferta con el nombre de la empresa (vistas públicas,
// candidato y admin).
type JobWithCompanyResponse struct {
	JobResponse
	CompanyName string `json:"company_name"`
}

// PostJobDemoRequest formulario público de /api/post-job. Solo valida y
// confirma; no persiste nada (la publicación real exige cuenta de empresa).
type PostJobDemoRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
	JobType     string `json:"job_type"`
	SalaryRange string `json:"salary_range"`
}
