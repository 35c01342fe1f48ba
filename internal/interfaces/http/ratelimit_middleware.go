package http

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/pkg/logger"
)

// LoginLimiter cuenta intentos por clave. Lo implementa *ratelimit.RedisLimiter.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RateLimit limita las peticiones por IP del cliente.
//
// Comportamiento:
//   - 429 Too Many Requests con Retry-After cuando se supera el máximo de la ventana.
//   - Si el limitador falla (Redis caído) se registra y la petición continúa.
func RateLimit(limiter LoginLimiter, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, retryAfter, err := limiter.Allow(c.Context(), c.IP())
		if err != nil {
			log.Warn().Err(err).Str("ip", c.IP()).Msg("limitador de login no disponible")
			return c.Next()
		}
		if !allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Message: "Demasiados intentos de inicio de sesión, vuelva a intentarlo más tarde",
			})
		}
		return c.Next()
	}
}
