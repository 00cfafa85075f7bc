package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PradoMendes/advocacia-insights-api/internal/application/usecases"
	"github.com/PradoMendes/advocacia-insights-api/internal/domain/repositories"
	"github.com/PradoMendes/advocacia-insights-api/internal/identity"
	"github.com/PradoMendes/advocacia-insights-api/internal/infrastructure/cache"
	"github.com/PradoMendes/advocacia-insights-api/internal/infrastructure/database"
	"github.com/PradoMendes/advocacia-insights-api/internal/infrastructure/redisdb"
	"github.com/PradoMendes/advocacia-insights-api/internal/interfaces/http/middleware"
	"github.com/PradoMendes/advocacia-insights-api/internal/interfaces/http/routes"
	"github.com/PradoMendes/advocacia-insights-api/internal/jobs"
	"github.com/PradoMendes/advocacia-insights-api/internal/realtime"
	"github.com/PradoMendes/advocacia-insights-api/internal/tracking"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn("⚠️ No .env file found, using system environment variables")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Redis é opcional: sem REDIS_URL o rate limiting fica desativado
	redisClient, err := redisdb.Setup()
	if err != nil {
		log.Warnf("⚠️ Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	queryCache := cache.New(5 * time.Minute)
	defer queryCache.Close()

	hub := realtime.NewHub()

	// Geolocalização opcional: sem o arquivo GeoLite2 os registros ficam sem
	// país/cidade
	var geo *tracking.GeoResolver
	if path := os.Getenv("GEOIP_DB_PATH"); path != "" {
		geo, err = tracking.NewGeoResolver(path)
		if err != nil {
			log.Warnf("⚠️ GeoIP database not loaded: %v", err)
			geo = nil
		} else {
			defer geo.Close()
		}
	}

	// Rastreador: fila assíncrona com gravação em lote
	analyticsRepo := repositories.NewAnalyticsRepository(db)
	sessionManager := identity.NewManager(identity.NewMemoryStore())
	tracker := tracking.NewTracker(analyticsRepo, sessionManager, geo)
	tracker.Start()

	// Triagem: cópia local sincronizada com as mudanças de contact_submissions
	submissionRepo := repositories.NewSubmissionRepository(db, hub)
	triageStore := usecases.NewTriageStore(submissionRepo, hub)
	triageStore.Start()
	if err := triageStore.Load(); err != nil {
		log.Warnf("⚠️ Could not preload submissions: %v", err)
	}

	// Operador inicial do painel
	operatorRepo := repositories.NewOperatorRepository(db)
	if err := operatorRepo.EnsureOperator(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Warnf("⚠️ Could not seed admin operator: %v", err)
	}

	// Consolidação diária de métricas
	scheduler := jobs.NewScheduler(db)
	scheduler.Start()

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Desabilitado modo Prefork pois causa instabilidade no container
		Prefork:      false,
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			if code == fiber.StatusInternalServerError {
				log.WithError(err).Error("Erro não tratado")
				return c.Status(code).JSON(fiber.Map{"error": "Internal Server Error"})
			}
			return c.Status(code).JSON(fiber.Map{"error": fiberErr.Message})
		},
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, routes.Dependencies{
		DB:          db,
		Cache:       queryCache,
		Redis:       redisClient,
		Hub:         hub,
		Tracker:     tracker,
		TriageStore: triageStore,
	})

	// Graceful shutdown: drena a fila de analytics antes de sair
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("🛑 Shutting down...")
		scheduler.Stop()
		triageStore.Stop()
		tracker.Stop()
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = app.Shutdown()
	}()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("🚀 Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
