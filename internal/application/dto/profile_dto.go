package dto

import "time"

// ProfileResponse datos de contacto de un usuario.
type ProfileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveCompanyProfileRequest crea o actualiza el perfil de la empresa dueña.
type SaveCompanyProfileRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	LogoURL     string `json:"logo_url"`
}

// CompanyResponse salida del perfil de empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	CompanySize string    `json:"company_size"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	LogoURL     string    `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaveApplicantProfileRequest crea o actualiza el perfil del candidato.
// Skills llega separada por comas y se normaliza antes de persistir.
type SaveApplicantProfileRequest struct {
	Bio             string         `json:"bio"`
	Skills          string         `json:"skills"`
	ExperienceYears int            `json:"experience_years" validate:"min=0"`
	Education       string         `json:"education"`
	Location        string         `json:"location"`
	ResumeURL       string         `json:"resume_url"`
	JobPreferences  map[string]any `json:"job_preferences"`
}

// ApplicantProfileResponse salida del perfil de candidato.
type ApplicantProfileResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Bio             string         `json:"bio"`
	Skills          []string       `json:"skills"`
	ExperienceYears int            `json:"experience_years"`
	Education       string         `json:"education"`
	Location        string         `json:"location"`
	ResumeURL       string         `json:"resume_url"`
	JobPreferences  map[string]any `json:"job_preferences"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
