package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	allowOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public    fiber.Router
	Analytics fiber.Router
	Dashboard fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares.
// O grupo Public não exige autenticação; Analytics e Dashboard exigem sessão
// de operador válida.
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	// Grupo público (rastreio, contato, health)
	public := app.Group("/api")

	// Consultas agregadas do painel
	analytics := app.Group("/api/analytics")
	analytics.Use(authMiddleware)

	// Triagem de solicitações
	dashboard := app.Group("/api/submissions")
	dashboard.Use(authMiddleware)

	return RouteGroups{
		Public:    public,
		Analytics: analytics,
		Dashboard: dashboard,
	}
}
