package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "IMAGE_CLEANUP_MODE", "IMAGE_QUEUE", "JWT_ACCESS_EXPIRY",
		"JWT_REFRESH_EXPIRY", "WORKER_CONCURRENCY", "UPLOAD_FS_WORKERS", "DB_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ImageCleanupInline, cfg.Jobs.ImageCleanupMode)
	assert.Equal(t, "images", cfg.Jobs.ImageQueue)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_CleanupModeIsCaseInsensitive(t *testing.T) {
	t.Setenv("IMAGE_CLEANUP_MODE", "QUEUE")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ImageCleanupQueue, cfg.Jobs.ImageCleanupMode)
}

func TestLoad_InvalidDBPortFails(t *testing.T) {
	t.Setenv("WORKER_CONCURRENCY", "lots")
	t.Setenv("DB_PORT", "abc")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "refresh must outlive access",
			mutate:  func(c *Config) { c.JWT.RefreshTokenExpiry = c.JWT.AccessTokenExpiry },
			wantErr: "JWT_REFRESH_EXPIRY",
		},
		{
			name:    "queue mode needs redis",
			mutate:  func(c *Config) { c.Jobs.ImageCleanupMode = ImageCleanupQueue; c.Redis.Enabled = false },
			wantErr: "REDIS_ENABLED",
		},
		{
			name:    "unknown cleanup mode",
			mutate:  func(c *Config) { c.Jobs.ImageCleanupMode = "cron" },
			wantErr: "IMAGE_CLEANUP_MODE",
		},
		{
			name:    "worker concurrency",
			mutate:  func(c *Config) { c.Jobs.WorkerConcurrency = 0 },
			wantErr: "WORKER_CONCURRENCY",
		},
		{
			name: "production needs a real secret",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.JWT.Secret = defaultJWTSecret
			},
			wantErr: "JWT_SECRET",
		},
		{
			name: "production needs db password",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.JWT.Secret = "s3cret"
				c.Database.Password = ""
			},
			wantErr: "DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDatabaseConfig_MinExceedsMax(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "2")
	t.Setenv("DB_MIN_CONNECTIONS", "5")

	_, err := LoadDatabaseConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MIN_CONNECTIONS")
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "7")
	t.Setenv("X_BAD_INT", "seven")
	t.Setenv("X_BOOL", "false")
	t.Setenv("X_DUR", "90s")

	assert.Equal(t, 7, getEnvInt("X_INT", 1))
	assert.Equal(t, 1, getEnvInt("X_BAD_INT", 1))
	assert.False(t, getEnvBool("X_BOOL", true))
	assert.Equal(t, 90*time.Second, getEnvDuration("X_DUR", time.Second))
	assert.Equal(t, "fallback", getEnv("X_MISSING", "fallback"))
}
