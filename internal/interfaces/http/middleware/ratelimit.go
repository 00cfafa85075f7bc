package middleware

import (
	"fmt"
	"time"

	"github.com/PradoMendes/advocacia-insights-api/internal/infrastructure/redisdb"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RateLimit limita requisições por IP+rota usando Redis. Em caso de falha do
// Redis a requisição passa (fail open): rate limiting é proteção, não
// funcionalidade.
func RateLimit(client *redisdb.Client, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.IP(), c.Path())

		count, err := client.Incr(c.Context(), key)
		if err != nil {
			log.WithError(err).Warn("Verificação de rate limit falhou")
			return c.Next()
		}

		if count == 1 {
			if err := client.Expire(c.Context(), key, window); err != nil {
				log.WithError(err).Warn("Erro ao definir TTL do rate limit")
			}
		}

		if count > int64(limit) {
			c.Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded",
			})
		}

		return c.Next()
	}
}
