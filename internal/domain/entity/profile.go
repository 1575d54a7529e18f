package entity

import "time"

// Profile datos básicos de contacto, uno a uno con User (cualquier rol).
type Profile struct {
	ID        string
	UserID    string
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Company perfil de empresa, uno a uno con un User de rol company.
// Se crea en el primer "crear perfil" y solo lo muta su dueño.
type Company struct {
	ID          string
	UserID      string
	CompanyName string
	Industry    string
	CompanySize string
	Website     string
	Description string
	Address     string
	City        string
	State       string
	Country     string
	LogoURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplicantProfile perfil de candidato, uno a uno con un User de rol applicant.
type ApplicantProfile struct {
	ID              string
	UserID          string
	Bio             string
	Skills          []string
	ExperienceYears int
	Education       string
	Location        string
	ResumeURL       string
	JobPreferences  map[string]any // estructura opaca, persiste como jsonb
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
