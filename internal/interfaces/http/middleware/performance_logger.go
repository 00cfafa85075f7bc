package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// PerformanceLogger mede o tempo de resposta das rotas críticas do painel.
func PerformanceLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Rotas monitoradas
		monitoredRoutes := []string{
			"/api/analytics",
			"/api/submissions",
		}

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.WithFields(log.Fields{
			"method":   c.Method(),
			"path":     path,
			"status":   c.Response().StatusCode(),
			"duration": duration.String(),
		}).Info("performance")

		return err
	}
}
