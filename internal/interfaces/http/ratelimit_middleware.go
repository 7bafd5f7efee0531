package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/infrastructure/cache"
)

const (
	loginLimit  = 5
	loginWindow = time.Minute
)

// RateLimitLogin limita los intentos de login por IP (5 por minuto) usando
// Redis. Si Redis falla, deja pasar: el rate limiter nunca debe tumbar el
// login por un problema de infraestructura propio.
func RateLimitLogin(cacheClient cache.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "rl:login:" + clientIP(c)
		count, err := cacheClient.IncrWithTTL(c.Context(), key, loginWindow)
		if err == nil && count > loginLimit {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiados intentos, espere un minuto",
			})
		}
		return c.Next()
	}
}

func clientIP(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.IP()
}
