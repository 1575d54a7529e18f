package dto

import "time"

// ── Admin ─────────────────────────────────────────────────────────────────────

// AdminUserRow perfil con su rol para la tabla de usuarios del admin.
type AdminUserRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminStats contadores derivados del conjunto completo en memoria.
type AdminStats struct {
	TotalJobs         int `json:"total_jobs"`
	PendingJobs       int `json:"pending_jobs"`
	ApprovedJobs      int `json:"approved_jobs"`
	TotalUsers        int `json:"total_users"`
	TotalCompanies    int `json:"total_companies"`
	TotalApplications int `json:"total_applications"`
}

// AdminDashboardResponse carga completa del dashboard de administración.
type AdminDashboardResponse struct {
	Jobs         []JobWithCompanyResponse     `json:"jobs"`
	Users        []AdminUserRow               `json:"users"`
	Companies    []CompanyResponse            `json:"companies"`
	Applications []CompanyApplicationResponse `json:"applications"`
	Stats        AdminStats                   `json:"stats"`
}

// ── Empresa ───────────────────────────────────────────────────────────────────

// CompanyStats contadores del dashboard de empresa.
type CompanyStats struct {
	TotalJobs           int `json:"total_jobs"`
	TotalApplications   int `json:"total_applications"`
	ActiveJobs          int `json:"active_jobs"`          // ofertas en estado approved
	PendingApplications int `json:"pending_applications"` // postulaciones en estado applied
}

// CompanyDashboardResponse carga completa del dashboard de empresa.
// Si Profile es nil, la empresa aún no creó su perfil y el resto llega vacío
// (el flujo "crear perfil primero" bloquea lo demás).
type CompanyDashboardResponse struct {
	Profile      *CompanyResponse             `json:"profile"`
	Jobs         []JobResponse                `json:"jobs"`
	Applications []CompanyApplicationResponse `json:"applications"`
	Stats        CompanyStats                 `json:"stats"`
}

// ── Candidato ─────────────────────────────────────────────────────────────────

// ApplicantStats contadores del dashboard de candidato.
type ApplicantStats struct {
	TotalApplications   int `json:"total_applications"`
	PendingApplications int `json:"pending_applications"` // en estado applied
	Shortlisted         int `json:"shortlisted"`
	Selected            int `json:"selected"`
}

// ApplicantDashboardResponse carga completa del dashboard de candidato.
// Recommendations solo se calcula cuando el perfil registra al menos una
// habilidad; con cero habilidades queda vacía.
type ApplicantDashboardResponse struct {
	Profile         *ApplicantProfileResponse      `json:"profile"`
	Jobs            []JobWithCompanyResponse       `json:"jobs"`
	Applications    []ApplicantApplicationResponse `json:"applications"`
	Recommendations []JobWithCompanyResponse       `json:"recommendations"`
	Stats           ApplicantStats                 `json:"stats"`
}
