package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
)

// CompanyHandler panel de empresa: perfil, ofertas propias y postulaciones recibidas.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresa.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard de empresa
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/company/dashboard [get]
func (h *CompanyHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SaveProfile godoc
// @Summary      Crear o actualizar el perfil de empresa
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveCompanyProfileRequest  true  "datos del perfil"
// @Success      200   {object}  dto.CompanyDashboardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/company/profile [put]
func (h *CompanyHandler) SaveProfile(c *fiber.Ctx) error {
	var in dto.SaveCompanyProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name es requerido"})
	}
	out, err := h.uc.SaveProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateJob godoc
// @Summary      Publicar una oferta (queda en pending hasta moderación)
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveJobRequest  true  "datos de la oferta"
// @Success      201   {object}  dto.CompanyDashboardResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/company/jobs [post]
func (h *CompanyHandler) CreateJob(c *fiber.Ctx) error {
	in, ok := parseJobBody(c)
	if !ok {
		return nil
	}
	out, err := h.uc.CreateJob(c.UserContext(), GetUserID(c), *in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateJob godoc
// @Summary      Editar una oferta propia (vuelve a pending)
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "ID de la oferta"
// @Param        body  body  dto.SaveJobRequest  true  "datos de la oferta"
// @Success      200   {object}  dto.CompanyDashboardResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company/jobs/{id} [put]
func (h *CompanyHandler) UpdateJob(c *fiber.Ctx) error {
	in, ok := parseJobBody(c)
	if !ok {
		return nil
	}
	out, err := h.uc.UpdateJob(c.UserContext(), GetUserID(c), c.Params("id"), *in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteJob godoc
// @Summary      Eliminar una oferta propia
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.CompanyDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/jobs/{id} [delete]
func (h *CompanyHandler) DeleteJob(c *fiber.Ctx) error {
	out, err := h.uc.DeleteJob(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateApplicationStatus godoc
// @Summary      Cambiar el estado de una postulación recibida
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                              true  "ID de la postulación"
// @Param        body  body  dto.UpdateApplicationStatusRequest  true  "status destino"
// @Success      200   {object}  dto.CompanyDashboardResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/company/applications/{id}/status [patch]
func (h *CompanyHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	var in dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.UpdateApplicationStatus(c.UserContext(), GetUserID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// parseJobBody parsea y valida el cuerpo de crear/editar oferta.
// Cuando devuelve false la respuesta de error ya quedó escrita.
func parseJobBody(c *fiber.Ctx) (*dto.SaveJobRequest, bool) {
	var in dto.SaveJobRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return nil, false
	}
	if in.Title == "" || in.Description == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y description son requeridos"})
		return nil, false
	}
	return &in, true
}
