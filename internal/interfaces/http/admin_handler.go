package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/pkg/csvexport"
)

// AdminHandler panel de administración: vista global, moderación y exportes.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard de administración
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AdminDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ApproveJob godoc
// @Summary      Aprobar una oferta pendiente
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.AdminDashboardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/admin/jobs/{id}/approve [patch]
func (h *AdminHandler) ApproveJob(c *fiber.Ctx) error {
	out, err := h.uc.ApproveJob(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RejectJob godoc
// @Summary      Rechazar una oferta
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.AdminDashboardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/admin/jobs/{id}/reject [patch]
func (h *AdminHandler) RejectJob(c *fiber.Ctx) error {
	out, err := h.uc.RejectJob(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ExportJobsCSV godoc
// @Summary      Exportar ofertas como CSV
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Router       /api/admin/export/jobs [get]
func (h *AdminHandler) ExportJobsCSV(c *fiber.Ctx) error {
	header, records, err := h.uc.JobsCSV(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return sendCSV(c, "jobs.csv", header, records)
}

// ExportCompaniesCSV godoc
// @Summary      Exportar empresas como CSV
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Router       /api/admin/export/companies [get]
func (h *AdminHandler) ExportCompaniesCSV(c *fiber.Ctx) error {
	header, records, err := h.uc.CompaniesCSV(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return sendCSV(c, "companies.csv", header, records)
}

// ExportApplicationsCSV godoc
// @Summary      Exportar postulaciones como CSV
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Router       /api/admin/export/applications [get]
func (h *AdminHandler) ExportApplicationsCSV(c *fiber.Ctx) error {
	header, records, err := h.uc.ApplicationsCSV(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return sendCSV(c, "applications.csv", header, records)
}

// ExportJobsPDF godoc
// @Summary      Reporte PDF de ofertas
// @Tags         admin
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {string}  string
// @Router       /api/admin/export/jobs.pdf [get]
func (h *AdminHandler) ExportJobsPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.JobsPDF(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="jobs.pdf"`)
	return c.Send(pdfBytes)
}

func sendCSV(c *fiber.Ctx, filename string, header []string, records [][]string) error {
	body, err := csvexport.Encode(header, records)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
