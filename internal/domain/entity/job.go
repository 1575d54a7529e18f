package entity

import "time"

// Estados de una oferta de empleo.
const (
	JobStatusPending  = "pending"
	JobStatusApproved = "approved"
	JobStatusRejected = "rejected"
)

// Job oferta de empleo publicada por una empresa.
// El contenido lo muta solo la empresa dueña; el estado solo el admin.
type Job struct {
	ID              string
	CompanyID       string
	Title           string
	Description     string
	Requirements    string
	Location        string
	JobType         string
	ExperienceLevel string
	SalaryRange     string
	SkillsRequired  []string
	Status          string // ver constantes JobStatus*
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanTransitionJobStatus valida la máquina de estados de la oferta:
//
//	pending → approved
//	*       → rejected
//
// Rechazar una oferta ya rechazada es un no-op permitido (idempotente).
// approved→pending y rejected→approved quedan prohibidos.
func CanTransitionJobStatus(from, to string) bool {
	if to == JobStatusRejected {
		return true
	}
	if from == JobStatusPending && to == JobStatusApproved {
		return true
	}
	return false
}
