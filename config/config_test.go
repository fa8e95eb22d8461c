package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GO_ENV", "PORT", "DB_DRIVER", "DATABASE_URL", "SESSION_SECRET", "SESSION_TTL",
		"ADMIN_USERNAME", "ADMIN_PASSWORD_HASH", "ADMIN_PASSWORD", "MAIL_PROVIDER",
		"MAIL_FROM_ADDRESS", "MAIL_FROM_NAME", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	} {
		t.Setenv(k, "")
	}
	// Run from an empty dir so no .env is picked up.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "events.db", cfg.DBUrl)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "noop", cfg.MailProvider)
	assert.True(t, cfg.SessionSecretGenerated)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("MAIL_PROVIDER", "ses")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Contains(t, cfg.DBUrl, "postgres://")
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.False(t, cfg.SessionSecretGenerated)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Equal(t, "ses", cfg.MailProvider)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"production without secret", map[string]string{"GO_ENV": "production"}},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"bad ttl", map[string]string{"SESSION_TTL": "soon"}},
		{"negative ttl", map[string]string{"SESSION_TTL": "-1h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_GeneratedSecretsDiffer(t *testing.T) {
	clearEnv(t)
	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)
	assert.NotEqual(t, a.SessionSecret, b.SessionSecret)
}
