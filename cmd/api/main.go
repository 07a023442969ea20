package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Finanzas-api/docs"
	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/factory"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/observability"
	httpRouter "github.com/jhoicas/Finanzas-api/internal/interfaces/http"
	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
	"github.com/jhoicas/Finanzas-api/pkg/metrics"
	"github.com/jhoicas/Finanzas-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("mail", cfg.Mail.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer st.close()

	mailer, closeMailer, err := newMailer(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("correo")
	}
	defer closeMailer()

	partitionCache, closeCache, err := newCache(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("caché")
	}
	defer closeCache()

	f := factory.New(factory.Deps{
		Store:    st.store,
		Tx:       st.tx,
		Mailer:   mailer,
		Observer: observability.NewNotificationObserver(log),
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		Hasher: password.NewBcryptHasher(password.DefaultCost),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.Metrics())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Finanzas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Factory:   f,
		JWTSecret: cfg.JWT.Secret,
		Cache:     partitionCache,
		Log:       log,
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
