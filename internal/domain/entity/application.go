package entity

import "time"

// Estados de una postulación.
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusSelected    = "selected"
	ApplicationStatusRejected    = "rejected"
)

// JobApplication postulación de un candidato a una oferta.
// Invariante: a lo sumo una postulación por par (candidato, oferta).
// El estado lo muta solo la empresa dueña de la oferta, nunca el candidato.
type JobApplication struct {
	ID          string
	ApplicantID string // FK a applicant_profiles
	JobID       string
	Status      string // ver constantes ApplicationStatus*
	CoverLetter string
	AppliedAt   time.Time
	UpdatedAt   time.Time
}

// CanTransitionApplicationStatus valida la máquina de estados de la postulación:
//
//	applied     → shortlisted | rejected
//	shortlisted → selected    | rejected
//
// selected y rejected son terminales.
func CanTransitionApplicationStatus(from, to string) bool {
	switch from {
	case ApplicationStatusApplied:
		return to == ApplicationStatusShortlisted || to == ApplicationStatusRejected
	case ApplicationStatusShortlisted:
		return to == ApplicationStatusSelected || to == ApplicationStatusRejected
	default:
		return false
	}
}

// ValidApplicationStatus indica si s es un estado conocido de postulación.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusSelected, ApplicationStatusRejected:
		return true
	}
	return false
}
