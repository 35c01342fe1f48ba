package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/maestros-api/internal/application/auth"
	"github.com/jhoicas/maestros-api/internal/application/usecase"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
	"github.com/jhoicas/maestros-api/internal/infrastructure/metrics"
	"github.com/jhoicas/maestros-api/internal/infrastructure/postgres"
	"github.com/jhoicas/maestros-api/internal/infrastructure/ratelimit"
	"github.com/jhoicas/maestros-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/maestros-api/internal/interfaces/http"
	"github.com/jhoicas/maestros-api/pkg/config"
	"github.com/jhoicas/maestros-api/pkg/jwt"
	"github.com/jhoicas/maestros-api/pkg/logger"
)

// stores repositorios del driver elegido en DB_DRIVER.
type stores struct {
	tiposDocumento     repository.TipoDocumentoRepository
	tiposContribuyente repository.TipoContribuyenteRepository
	entidades          repository.EntidadRepository
	usuarios           repository.UsuarioRepository
	tx                 repository.TxRunner
	close              func()
}

func openStores(ctx context.Context, cfg config.DBConfig) (*stores, error) {
	if cfg.Driver == config.DriverSQLite {
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &stores{
			tiposDocumento:     sqlite.NewTipoDocumentoRepository(db),
			tiposContribuyente: sqlite.NewTipoContribuyenteRepository(db),
			entidades:          sqlite.NewEntidadRepository(db),
			usuarios:           sqlite.NewUsuarioRepository(db),
			tx:                 sqlite.NewTxRunner(db),
			close:              func() { _ = db.Close() },
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &stores{
		tiposDocumento:     postgres.NewTipoDocumentoRepository(pool),
		tiposContribuyente: postgres.NewTipoContribuyenteRepository(pool),
		entidades:          postgres.NewEntidadRepository(pool),
		usuarios:           postgres.NewUsuarioRepository(pool),
		tx:                 postgres.NewTxRunner(pool),
		close:              pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer st.close()

	tokens, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de tokens")
	}

	// Rate limit de login: solo si hay Redis configurado.
	var loginLimiter httpRouter.LoginLimiter
	if cfg.Redis.URL != "" {
		window := time.Duration(cfg.RateLimit.LoginWindowSeconds) * time.Second
		limiter, err := ratelimit.NewRedisLimiter(ctx, cfg.Redis.URL, cfg.RateLimit.LoginMax, window)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer limiter.Close()
		loginLimiter = limiter
		log.Info().Int("max", cfg.RateLimit.LoginMax).Dur("window", window).Msg("rate limit de login activo")
	}

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		TipoDocumentoUC:     usecase.NewTipoDocumentoUseCase(st.tiposDocumento),
		TipoContribuyenteUC: usecase.NewTipoContribuyenteUseCase(st.tiposContribuyente),
		EntidadUC:           usecase.NewEntidadUseCase(st.tx, st.entidades),
		UsuarioUC:           usecase.NewUsuarioUseCase(st.usuarios, 0),
		AuthUC:              auth.NewAuthUseCase(st.usuarios, tokens),
		Tokens:              tokens,
		LoginLimiter:        loginLimiter,
		Metrics:             metrics.New("maestros"),
		Log:                 log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
