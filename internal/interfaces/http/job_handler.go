package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// JobHandler superficie pública: listado de ofertas aprobadas y el formulario
// demostrativo de publicación.
type JobHandler struct {
	uc *usecase.ApplicantUseCase
}

// NewJobHandler construye el handler público de ofertas.
func NewJobHandler(uc *usecase.ApplicantUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// List godoc
// @Summary      Listar ofertas aprobadas (público)
// @Tags         jobs
// @Produce      json
// @Param        search    query  string  false  "substring sobre título y descripción"
// @Param        location  query  string  false  "substring sobre ubicación"
// @Success      200  {array}  dto.JobWithCompanyResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.SearchJobs(c.UserContext(), repository.JobSearchFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// PostJobDemo godoc
// @Summary      Formulario público de publicación (solo confirma, no persiste)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostJobDemoRequest  true  "title, company, description"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/post-job [post]
//
// La publicación real exige cuenta de empresa; este endpoint solo valida el
// formulario y confirma, igual que la página pública de "publica tu oferta".
func (h *JobHandler) PostJobDemo(c *fiber.Ctx) error {
	var in dto.PostJobDemoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Company == "" || in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, company y description son requeridos"})
	}
	return c.JSON(dto.MessageResponse{Message: "oferta recibida; regístrate como empresa para publicarla"})
}
