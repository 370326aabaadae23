// Package http expõe a API REST da portaria sobre Fiber: handlers,
// middlewares de autenticação/autorização e o registro de rotas.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/auth"
	"github.com/portaria-app/gatekeeper-api/internal/application/reports"
	"github.com/portaria-app/gatekeeper-api/internal/application/usecase"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	VisitorUC   *usecase.VisitorUseCase
	ScheduleUC  *usecase.ScheduleUseCase
	FleetUC     *usecase.FleetUseCase
	ReportUC    *reports.ReportUseCase
	DashboardUC *reports.DashboardUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Gatekeeper API Running"})
	})

	// Auth (login é público; verify exige token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token, ou query param nos downloads)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/verify", authHandler.Verify)

	// Users (apenas admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Visitors
	visitors := protected.Group("/visitors")
	visitorHandler := NewVisitorHandler(deps.VisitorUC)
	visitors.Post("/", visitorHandler.CheckIn)
	visitors.Get("/", visitorHandler.List)
	visitors.Put("/:id/checkout", visitorHandler.CheckOut)

	// Schedules
	schedules := protected.Group("/schedules")
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	schedules.Post("/", scheduleHandler.Create)
	schedules.Get("/", scheduleHandler.List)
	schedules.Get("/today", scheduleHandler.Today)
	schedules.Put("/:id/complete", scheduleHandler.Complete)
	schedules.Delete("/:id", scheduleHandler.Delete)

	// Fleet
	fleet := protected.Group("/fleet")
	fleetHandler := NewFleetHandler(deps.FleetUC)
	fleet.Post("/", fleetHandler.Depart)
	fleet.Get("/", fleetHandler.List)
	fleet.Put("/:id/return", fleetHandler.Return)

	// Reports
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/daily", reportHandler.Daily)
	reportsGroup.Post("/observation", reportHandler.SaveObservation)
	reportsGroup.Get("/export/excel", reportHandler.ExportExcel)
	reportsGroup.Get("/export/pdf", reportHandler.ExportPDF)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
