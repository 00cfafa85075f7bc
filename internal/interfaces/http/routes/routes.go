package routes

import (
	"time"

	"github.com/PradoMendes/advocacia-insights-api/internal/application/usecases"
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/repositories"
	"github.com/PradoMendes/advocacia-insights-api/internal/infrastructure/cache"
	"github.com/PradoMendes/advocacia-insights-api/internal/infrastructure/redisdb"
	"github.com/PradoMendes/advocacia-insights-api/internal/interfaces/http/handlers"
	"github.com/PradoMendes/advocacia-insights-api/internal/interfaces/http/middleware"
	"github.com/PradoMendes/advocacia-insights-api/internal/realtime"
	"github.com/PradoMendes/advocacia-insights-api/internal/tracking"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

// Dependencies agrupa a infraestrutura compartilhada que as rotas consomem.
type Dependencies struct {
	DB          *gorm.DB
	Cache       *cache.Cache
	Redis       *redisdb.Client
	Hub         *realtime.Hub
	Tracker     *tracking.Tracker
	TriageStore *usecases.TriageStore
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	app.Use(middleware.PerformanceLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	analyticsRepo := repositories.NewAnalyticsRepository(deps.DB)
	submissionRepo := repositories.NewSubmissionRepository(deps.DB, deps.Hub)
	operatorRepo := repositories.NewOperatorRepository(deps.DB)

	// Use Cases
	analyticsUseCase := usecases.NewAnalyticsUseCase(analyticsRepo, deps.Cache)
	contactUseCase := usecases.NewContactUseCase(submissionRepo)

	// Handlers
	trackingHandler := handlers.NewTrackingHandler(deps.Tracker)
	contactHandler := handlers.NewContactHandler(contactUseCase)
	authHandler := handlers.NewAuthHandler(operatorRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)
	submissionHandler := handlers.NewSubmissionHandler(deps.TriageStore, deps.Hub)

	// Routes
	groups := middleware.SetupRouteGroups(app, middleware.RequireAuth)

	// Rotas públicas de rastreio: respondem 202 e gravam em lote no worker
	publicLimit := middleware.RateLimit(deps.Redis, 120, time.Minute)
	groups.Public.Post("/track/page-view", publicLimit, trackingHandler.TrackPageView)
	groups.Public.Post("/track/click-event", publicLimit, trackingHandler.TrackClickEvent)

	// Formulário de contato
	contactLimit := middleware.RateLimit(deps.Redis, 10, time.Minute)
	groups.Public.Post("/contact", contactLimit, contactHandler.SubmitContactForm)

	// Sessão do painel
	groups.Public.Post("/auth/login", authHandler.Login)
	groups.Public.Post("/auth/signout", authHandler.SignOut)

	// Consultas agregadas (exigem sessão de operador)
	groups.Analytics.Get("/page-views", analyticsHandler.GetPageViews)
	groups.Analytics.Get("/click-events", analyticsHandler.GetClickEvents)
	groups.Analytics.Get("/dashboard", analyticsHandler.GetDashboard)

	// Triagem de solicitações (exige sessão de operador)
	groups.Dashboard.Get("/", submissionHandler.GetSubmissions)
	groups.Dashboard.Patch("/:id/status", submissionHandler.UpdateSubmissionStatus)
	groups.Dashboard.Get("/stream", submissionHandler.StreamSubmissions)
}
