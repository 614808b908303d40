package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"shelter-backend/internal/infrastructure/database"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App       AppConfig
	Database  *database.DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	MinIO     MinIOConfig
	Storage   StorageConfig
	Jobs      JobConfig
	Bootstrap BootstrapConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	Enabled  bool
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type MinIOConfig struct {
	Endpoint      string // localhost:9000
	AccessKey     string // minioadmin
	SecretKey     string // minioadmin
	Bucket        string // shelter
	UseSSL        bool   // false for local
	PublicBaseURL string // base used to build public image URLs, defaults to the endpoint
}

// =====================================================
// IMAGE STORAGE
// =====================================================

type StorageConfig struct {
	TempDir         string // where uploads are staged before they reach MinIO
	MaxUploadBytes  int64
	FSWorkers       int // bounded pool for blocking filesystem calls
	MaxImageDimPx   int // larger images are shrunk to fit
	ImageKeyPrefix  string
	DeleteTimeout   time.Duration
	MultipartMemory int64
}

// JobConfig chọn cách xóa ảnh cũ khi update animal
//   - inline: goroutine trong API process
//   - queue: enqueue task cho cmd/worker (asynq)
type JobConfig struct {
	ImageCleanupMode  string
	ImageQueue        string
	WorkerConcurrency int
	WorkerHealthAddr  string // /health, /ready của cmd/worker
}

// BootstrapConfig - admin user được seed khi start (optional)
type BootstrapConfig struct {
	AdminUsername string
	AdminPassword string
}

const (
	ImageCleanupInline = "inline"
	ImageCleanupQueue  = "queue"
)

// Load đọc config từ environment variables
func Load() (*Config, error) {
	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Database: dbConfig,
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Shelter API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", true),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry:  getEnvDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshTokenExpiry: getEnvDuration("JWT_REFRESH_EXPIRY", 72*time.Hour),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:     getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:        getEnv("MINIO_BUCKET", "shelter"),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		Storage: StorageConfig{
			TempDir:         getEnv("UPLOAD_TMP_DIR", os.TempDir()),
			MaxUploadBytes:  int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
			FSWorkers:       getEnvInt("UPLOAD_FS_WORKERS", 4),
			MaxImageDimPx:   getEnvInt("UPLOAD_MAX_IMAGE_DIM", 1600),
			ImageKeyPrefix:  getEnv("UPLOAD_KEY_PREFIX", "animals"),
			DeleteTimeout:   getEnvDuration("UPLOAD_DELETE_TIMEOUT", 30*time.Second),
			MultipartMemory: int64(getEnvInt("UPLOAD_MULTIPART_MEMORY", 8<<20)),
		},
		Jobs: JobConfig{
			ImageCleanupMode:  strings.ToLower(getEnv("IMAGE_CLEANUP_MODE", ImageCleanupInline)),
			ImageQueue:        getEnv("IMAGE_QUEUE", "images"),
			WorkerConcurrency: getEnvInt("WORKER_CONCURRENCY", 5),
			WorkerHealthAddr:  getEnv("WORKER_HEALTH_ADDR", ":9999"),
		},
		Bootstrap: BootstrapConfig{
			AdminUsername: getEnv("BOOTSTRAP_ADMIN_USERNAME", ""),
			AdminPassword: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.JWT.AccessTokenExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}
	if c.JWT.RefreshTokenExpiry <= c.JWT.AccessTokenExpiry {
		return fmt.Errorf("JWT_REFRESH_EXPIRY must be longer than JWT_ACCESS_EXPIRY")
	}

	switch c.Jobs.ImageCleanupMode {
	case ImageCleanupInline:
	case ImageCleanupQueue:
		if !c.Redis.Enabled {
			return fmt.Errorf("IMAGE_CLEANUP_MODE=queue requires REDIS_ENABLED=true")
		}
	default:
		return fmt.Errorf("unknown IMAGE_CLEANUP_MODE %q", c.Jobs.ImageCleanupMode)
	}

	if c.Jobs.WorkerConcurrency < 1 {
		return fmt.Errorf("WORKER_CONCURRENCY must be at least 1")
	}

	if c.Storage.FSWorkers < 1 {
		return fmt.Errorf("UPLOAD_FS_WORKERS must be at least 1")
	}

	// Production environment phải có JWT secret
	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// IsDevelopment dùng cho logger / gin mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
