package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "finanzas-api", cfg.App.Name)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, config.StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, config.MailDriverLog, cfg.Mail.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.False(t, cfg.DB.ForceIPv4)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("MAIL_DRIVER", "amqp")
	t.Setenv("DB_FORCE_IPV4", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StorageDriverMemory, cfg.Storage.Driver)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, config.MailDriverAMQP, cfg.Mail.Driver)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ProductionExigeSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "finanzas", SSLMode: "disable"}
	dsn := c.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd")
	assert.Equal(t, dsn, c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
