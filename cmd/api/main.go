package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/portaria-app/gatekeeper-api/internal/application/auth"
	"github.com/portaria-app/gatekeeper-api/internal/application/reports"
	"github.com/portaria-app/gatekeeper-api/internal/application/usecase"
	infraexcel "github.com/portaria-app/gatekeeper-api/internal/infrastructure/excel"
	infrapdf "github.com/portaria-app/gatekeeper-api/internal/infrastructure/pdf"
	"github.com/portaria-app/gatekeeper-api/internal/infrastructure/postgres"
	httpRouter "github.com/portaria-app/gatekeeper-api/internal/interfaces/http"
	"github.com/portaria-app/gatekeeper-api/pkg/config"
	"github.com/portaria-app/gatekeeper-api/pkg/logger"
)

func main() {
	// Campos de quilometragem serializam como números JSON, não strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	visitorRepo := postgres.NewVisitorRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	fleetRepo := postgres.NewFleetRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	visitorUC := usecase.NewVisitorUseCase(visitorRepo)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo)
	fleetUC := usecase.NewFleetUseCase(fleetRepo)
	reportUC := reports.NewReportUseCase(
		visitorRepo, fleetRepo, scheduleRepo, reportRepo,
		infraexcel.NewReportRenderer(), infrapdf.NewReportRenderer(),
	)
	dashboardUC := reports.NewDashboardUseCase(visitorRepo, scheduleRepo, fleetRepo)

	created, err := authUC.EnsureDefaultAdmin(ctx,
		cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword, cfg.Bootstrap.AdminName)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap do admin padrão")
	}
	if created {
		log.Info().
			Str("username", cfg.Bootstrap.AdminUsername).
			Msg("admin padrão criado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gatekeeper API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		VisitorUC:   visitorUC,
		ScheduleUC:  scheduleUC,
		FleetUC:     fleetUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
