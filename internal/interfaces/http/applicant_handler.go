package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ApplicantHandler panel de candidato: perfil, búsqueda, postulaciones y
// recomendaciones.
type ApplicantHandler struct {
	uc *usecase.ApplicantUseCase
}

// NewApplicantHandler construye el handler de candidato.
func NewApplicantHandler(uc *usecase.ApplicantUseCase) *ApplicantHandler {
	return &ApplicantHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard de candidato
// @Tags         applicant
// @Produce      json
// @Security     BearerAuth
// @Param        search    query  string  false  "substring sobre título y descripción"
// @Param        location  query  string  false  "substring sobre ubicación"
// @Success      200  {object}  dto.ApplicantDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/applicant/dashboard [get]
func (h *ApplicantHandler) Dashboard(c *fiber.Ctx) error {
	filter := repository.JobSearchFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
	}
	out, err := h.uc.Dashboard(c.UserContext(), GetUserID(c), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SaveProfile godoc
// @Summary      Crear o actualizar el perfil de candidato
// @Tags         applicant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveApplicantProfileRequest  true  "datos del perfil"
// @Success      200   {object}  dto.ApplicantDashboardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/applicant/profile [put]
func (h *ApplicantHandler) SaveProfile(c *fiber.Ctx) error {
	var in dto.SaveApplicantProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ExperienceYears < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "experience_years no puede ser negativo"})
	}
	out, err := h.uc.SaveProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Apply godoc
// @Summary      Postular a una oferta
// @Tags         applicant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string            true   "ID de la oferta"
// @Param        body  body  dto.ApplyRequest  false  "carta de presentación"
// @Success      201   {object}  dto.ApplicantDashboardResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/applicant/jobs/{id}/apply [post]
func (h *ApplicantHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyRequest
	// Cuerpo opcional: postular sin carta es válido.
	_ = c.BodyParser(&in)
	out, err := h.uc.Apply(c.UserContext(), GetUserID(c), c.Params("id"), in.CoverLetter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
