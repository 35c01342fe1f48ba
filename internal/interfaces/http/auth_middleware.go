package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maestros-api/internal/domain"
)

// LocalUsername key de c.Locals con el usuario autenticado.
const LocalUsername = "username"

// TokenParser verifica un token y devuelve su sujeto (nombre de usuario).
// Lo implementa *jwt.Manager.
type TokenParser interface {
	ExtractSubject(token string) (string, error)
}

// AuthMiddleware valida el Bearer Token de todas las peticiones salvo las rutas
// públicas indicadas, y deja el usuario en c.Locals.
func AuthMiddleware(tokens TokenParser, publicPaths ...string) fiber.Handler {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := public[normalizePath(c.Path())]; ok {
			return c.Next()
		}
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domain.Unauthorized("Token de acceso requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.Unauthorized("Formato de token inválido, use: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return domain.Unauthorized("Token de acceso requerido")
		}
		username, err := tokens.ExtractSubject(tokenString)
		if err != nil || username == "" {
			return domain.Unauthorized("Token inválido o expirado")
		}
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// GetUsername devuelve el usuario autenticado (después de AuthMiddleware).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

func normalizePath(p string) string {
	if len(p) > 1 {
		return strings.TrimSuffix(p, "/")
	}
	return p
}
