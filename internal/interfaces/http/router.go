package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/maestros-api/internal/application/auth"
	"github.com/jhoicas/maestros-api/internal/application/usecase"
	"github.com/jhoicas/maestros-api/internal/infrastructure/metrics"
	"github.com/jhoicas/maestros-api/pkg/logger"
)

// Rutas que no pasan por AuthMiddleware.
const (
	LoginPath   = "/api/v1/auth/login"
	HealthPath  = "/health"
	MetricsPath = "/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TipoDocumentoUC     *usecase.TipoDocumentoUseCase
	TipoContribuyenteUC *usecase.TipoContribuyenteUseCase
	EntidadUC           *usecase.EntidadUseCase
	UsuarioUC           *usecase.UsuarioUseCase
	AuthUC              *auth.AuthUseCase
	Tokens              TokenParser
	// LoginLimiter nil deshabilita el límite de intentos de login.
	LoginLimiter LoginLimiter
	Metrics      *metrics.Metrics
	Log          *logger.Logger
}

// NewApp crea la app Fiber con el manejo central de errores, los middlewares
// globales (request id, métricas, recover, token) y todas las rutas.
func NewApp(appName string, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: ErrorHandler(deps.Log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	app.Use(RequestLogger(deps.Log))
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
	}
	app.Use(recover.New())
	app.Use(AuthMiddleware(deps.Tokens, LoginPath, HealthPath, MetricsPath))

	app.Get(HealthPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	})
	if deps.Metrics != nil {
		app.Get(MetricsPath, adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público, con límite de intentos si hay Redis)
	authHandler := NewAuthHandler(deps.AuthUC)
	if deps.LoginLimiter != nil {
		api.Post("/auth/login", RateLimit(deps.LoginLimiter, deps.Log), authHandler.Login)
	} else {
		api.Post("/auth/login", authHandler.Login)
	}

	tiposDocumento := api.Group("/tipo-documento")
	tdHandler := NewTipoDocumentoHandler(deps.TipoDocumentoUC)
	tiposDocumento.Get("/", tdHandler.List)
	tiposDocumento.Get("/estado/:estado", tdHandler.ListByEstado)
	tiposDocumento.Get("/:id", tdHandler.GetByID)
	tiposDocumento.Post("/", tdHandler.Create)
	tiposDocumento.Put("/:id", tdHandler.Update)
	tiposDocumento.Delete("/:id", tdHandler.Delete)

	tiposContribuyente := api.Group("/tipo-contribuyente")
	tcHandler := NewTipoContribuyenteHandler(deps.TipoContribuyenteUC)
	tiposContribuyente.Get("/", tcHandler.List)
	tiposContribuyente.Get("/estado/:estado", tcHandler.ListByEstado)
	tiposContribuyente.Get("/:id", tcHandler.GetByID)
	tiposContribuyente.Post("/", tcHandler.Create)
	tiposContribuyente.Put("/:id", tcHandler.Update)
	tiposContribuyente.Delete("/:id", tcHandler.Delete)

	entidades := api.Group("/entidad")
	entidadHandler := NewEntidadHandler(deps.EntidadUC)
	entidades.Get("/", entidadHandler.List)
	entidades.Get("/estado/:estado", entidadHandler.ListByEstado)
	entidades.Get("/:id", entidadHandler.GetByID)
	entidades.Post("/", entidadHandler.Create)
	entidades.Put("/:id", entidadHandler.Update)
	entidades.Delete("/:id", entidadHandler.Delete)

	usuarios := api.Group("/usuario")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
}
