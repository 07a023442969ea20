package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/mail"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Finanzas-api/internal/interfaces/http"
	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

type storage struct {
	store repository.Store
	tx    repository.TxRunner
	close func()
}

// openStorage elige el adaptador según STORAGE_DRIVER. Con postgres aplica migraciones si DB_AUTO_MIGRATE.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &storage{store: store, tx: memory.NewTxRunner(store), close: func() {}}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Msg("migraciones aplicadas")
	}
	return &storage{store: postgres.NewStore(pool), tx: postgres.NewTxRunner(pool), close: pool.Close}, nil
}

func newMailer(ctx context.Context, cfg *config.Config, log *logger.Logger) (auth.Mailer, func(), error) {
	switch cfg.Mail.Driver {
	case config.MailDriverSMTP:
		return mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			User:     cfg.Mail.SMTPUser,
			Password: cfg.Mail.SMTPPassword,
			From:     cfg.Mail.From,
			ResetURL: cfg.Mail.ResetURL,
		}), func() {}, nil
	case config.MailDriverAMQP:
		m, err := mail.NewAMQPMailer(ctx, mail.AMQPConfig{
			URL:        cfg.Mail.AMQPURL,
			Exchange:   cfg.Mail.AMQPExchange,
			RoutingKey: cfg.Mail.AMQPRouting,
			From:       cfg.Mail.From,
			ResetURL:   cfg.Mail.ResetURL,
		})
		if err != nil {
			return nil, nil, err
		}
		return m, func() {
			if err := m.Close(); err != nil {
				log.Warn().Err(err).Msg("cerrar conexión AMQP")
			}
		}, nil
	default:
		return mail.NewLogMailer(log, cfg.Mail.ResetURL), func() {}, nil
	}
}

// newCache usa Redis si REDIS_URL está definido; si no, caché en memoria del proceso.
func newCache(ctx context.Context, cfg *config.Config) (httpRouter.PartitionCache, func(), error) {
	if cfg.Redis.URL == "" {
		return cache.NewMemoryCache(), func() {}, nil
	}
	c, err := cache.NewRedisCache(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Close() }, nil
}
