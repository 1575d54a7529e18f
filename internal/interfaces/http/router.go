package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AdminUC     *usecase.AdminUseCase
	CompanyUC   *usecase.CompanyUseCase
	ApplicantUC *usecase.ApplicantUseCase
	Roles       RoleResolver
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.Roles), authHandler.Me)

	// Superficie pública de ofertas
	jobHandler := NewJobHandler(deps.ApplicantUC)
	api.Get("/jobs", jobHandler.List)
	api.Post("/post-job", jobHandler.PostJobDemo)

	authed := AuthMiddleware(deps.JWTSecret, deps.Roles)

	// Panel de administración (solo rol admin)
	admin := api.Group("/admin", authed, RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Patch("/jobs/:id/approve", adminHandler.ApproveJob)
	admin.Patch("/jobs/:id/reject", adminHandler.RejectJob)
	admin.Get("/export/jobs.pdf", adminHandler.ExportJobsPDF)
	admin.Get("/export/jobs", adminHandler.ExportJobsCSV)
	admin.Get("/export/companies", adminHandler.ExportCompaniesCSV)
	admin.Get("/export/applications", adminHandler.ExportApplicationsCSV)

	// Panel de empresa (solo rol company)
	company := api.Group("/company", authed, RequireRole(entity.RoleCompany))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Get("/dashboard", companyHandler.Dashboard)
	company.Put("/profile", companyHandler.SaveProfile)
	company.Post("/jobs", companyHandler.CreateJob)
	company.Put("/jobs/:id", companyHandler.UpdateJob)
	company.Delete("/jobs/:id", companyHandler.DeleteJob)
	company.Patch("/applications/:id/status", companyHandler.UpdateApplicationStatus)

	// Panel de candidato (solo rol applicant)
	applicant := api.Group("/applicant", authed, RequireRole(entity.RoleApplicant))
	applicantHandler := NewApplicantHandler(deps.ApplicantUC)
	applicant.Get("/dashboard", applicantHandler.Dashboard)
	applicant.Put("/profile", applicantHandler.SaveProfile)
	applicant.Post("/jobs/:id/apply", applicantHandler.Apply)
}
