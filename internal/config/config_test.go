package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_MIGRATE", "")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DbPort)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DbHost: "db", DbUser: "u", DbName: "n", JWTSecret: "s", AccessTokenTTL: "bogus"}
	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, 24*time.Hour, cfg.AccessTTL())

	_, err = (&Config{DbHost: "db", DbUser: "u", DbName: "n"}).Validate()
	assert.Error(t, err, "пустой JWT_SECRET это фатальная ошибка")

	_, err = (&Config{JWTSecret: "s"}).Validate()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DbUser: "u", DbPass: "p", DbHost: "h", DbPort: "5432", DbName: "n", DbSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", cfg.GetDSN())
	assert.Equal(t, "pgx5://u:p@h:5432/n?sslmode=disable", cfg.GetMigrateURL())
	assert.NotContains(t, cfg.GetDSNSafe(), ":p@")
}
