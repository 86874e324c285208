package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		req := require.New(t)

		cfg, err := Load()

		req.NoError(err)
		req.Equal("8080", cfg.Port)
		req.Equal(time.Hour, cfg.AccessTTL)
		req.Equal("catalog.events", cfg.RabbitMQEventsQueue)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("PORT", "9090")
		t.Setenv("DB_MAX_CONNS", "25")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
		t.Setenv("AUTH_ENABLED", "true")

		cfg, err := Load()

		req.NoError(err)
		req.Equal("9090", cfg.Port)
		req.Equal(int32(25), cfg.DBMaxConns)
		req.True(cfg.AuthEnabled)
		req.Equal([]string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	})

	t.Run("should fail on malformed values", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("JWT_ACCESS_TTL", "forever")

		_, err := Load()

		req.Error(err)
	})
}

func TestPostgresDSN(t *testing.T) {
	req := require.New(t)
	cfg := &Config{DBUser: "app", DBPassword: "p@ss", DBHost: "db", DBPort: "5432", DBName: "catalog", DBSSLMode: "disable"}

	req.Equal("postgres://app:p%40ss@db:5432/catalog?sslmode=disable", cfg.PostgresDSN())
}
