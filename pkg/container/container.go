package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/config"
	infraCache "shelter-backend/internal/infrastructure/cache"
	"shelter-backend/internal/infrastructure/database"
	"shelter-backend/internal/infrastructure/queue"
	"shelter-backend/internal/infrastructure/storage"
	"shelter-backend/internal/shared"
	"shelter-backend/pkg/cache"
	"shelter-backend/pkg/jwt"

	"shelter-backend/internal/domains/adopter"
	adopterHandler "shelter-backend/internal/domains/adopter/handler"
	adopterRepo "shelter-backend/internal/domains/adopter/repository"
	adopterService "shelter-backend/internal/domains/adopter/service"
	"shelter-backend/internal/domains/animal"
	animalHandler "shelter-backend/internal/domains/animal/handler"
	animalRepo "shelter-backend/internal/domains/animal/repository"
	animalService "shelter-backend/internal/domains/animal/service"
	"shelter-backend/internal/domains/auth"
	authHandler "shelter-backend/internal/domains/auth/handler"
	authRepo "shelter-backend/internal/domains/auth/repository"
	authService "shelter-backend/internal/domains/auth/service"
	"shelter-backend/internal/domains/schedule"
	scheduleHandler "shelter-backend/internal/domains/schedule/handler"
	scheduleRepo "shelter-backend/internal/domains/schedule/repository"
	scheduleService "shelter-backend/internal/domains/schedule/service"
	"shelter-backend/internal/domains/visit"
	visitHandler "shelter-backend/internal/domains/visit/handler"
	visitRepo "shelter-backend/internal/domains/visit/repository"
	visitService "shelter-backend/internal/domains/visit/service"
	"shelter-backend/internal/domains/volunteer"
	volunteerHandler "shelter-backend/internal/domains/volunteer/handler"
	volunteerRepo "shelter-backend/internal/domains/volunteer/repository"
	volunteerService "shelter-backend/internal/domains/volunteer/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependency graph của API process
// Thứ tự init: config → db → cache → storage → repositories → services → handlers
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	ImageStore  *storage.MinIOImageStore
	Images      *storage.BackgroundDeleter // old-image cleanup, không block response
	QueueClient *asynq.Client              // chỉ set khi IMAGE_CLEANUP_MODE=queue

	// Repositories
	ScheduleRepo  schedule.Repository
	AnimalRepo    animal.Repository
	AdopterRepo   adopter.Repository
	VolunteerRepo volunteer.Repository
	VisitRepo     visit.Repository
	UserRepo      auth.Repository

	// Services
	ScheduleService  schedule.Service
	AnimalService    animal.Service
	AdopterService   adopter.Service
	VolunteerService volunteer.Service
	VisitService     visit.Service
	AuthService      auth.Service

	// Handlers
	ScheduleHandler  *scheduleHandler.ScheduleHandler
	AnimalHandler    *animalHandler.AnimalHandler
	AdopterHandler   *adopterHandler.AdopterHandler
	VolunteerHandler *volunteerHandler.VolunteerHandler
	VisitHandler     *visitHandler.VisitHandler
	AuthHandler      *authHandler.AuthHandler
}

// ========================================
// CONSTRUCTORS
// ========================================

// NewContainer builds everything cmd/api needs
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI container...")

	c := &Container{Config: cfg}

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	c.initCache(ctx)

	if err := c.initStorage(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// NewCLIContainer chỉ có DB + auth, dùng cho cmd/shelterctl (không cần MinIO, Redis)
func NewCLIContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg, Cache: infraCache.NoopCache{}}

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	c.UserRepo = authRepo.NewPostgresRepository(c.DB.Pool)
	c.AuthService = authService.NewAuthService(c.UserRepo, c.JWTManager)

	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initDatabase(ctx context.Context) error {
	log.Info().Str("host", c.Config.Database.Host).Msg("Connecting to PostgreSQL...")

	db := database.NewPostgresDB(c.Config.Database)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Info().Msg("Database connected")
	return nil
}

// initCache: Redis lỗi không critical, fallback NoopCache
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		log.Info().Msg("Redis disabled, using no-op cache")
		c.Cache = infraCache.NoopCache{}
		return
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), using no-op cache")
		_ = rc.Close()
		c.Cache = infraCache.NoopCache{}
		return
	}

	log.Info().Str("host", c.Config.Redis.Host).Msg("Redis connected")
	c.Cache = rc
}

func (c *Container) initStorage(ctx context.Context) error {
	cfg := c.Config

	store, err := storage.NewMinIOImageStore(ctx, cfg.MinIO, cfg.Storage,
		storage.NewFSPool(cfg.Storage.FSWorkers),
		storage.NewImageProcessor(cfg.Storage.MaxImageDimPx),
	)
	if err != nil {
		return fmt.Errorf("failed to init image store: %w", err)
	}
	c.ImageStore = store

	// Xóa ảnh cũ: inline gọi MinIO trực tiếp, queue thì enqueue cho cmd/worker
	var target storage.Deleter = store
	if cfg.Jobs.ImageCleanupMode == config.ImageCleanupQueue {
		c.QueueClient = queue.NewClient(cfg.Redis)
		target = queue.NewImageCleanupEnqueuer(c.QueueClient, cfg.Jobs.ImageQueue)
	}
	c.Images = storage.NewBackgroundDeleter(target, cfg.Storage.DeleteTimeout)

	log.Info().
		Str("bucket", cfg.MinIO.Bucket).
		Str("cleanup_mode", cfg.Jobs.ImageCleanupMode).
		Msg("Image storage ready")
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ScheduleRepo = scheduleRepo.NewPostgresRepository(pool)
	c.AnimalRepo = animalRepo.NewCachedRepository(animalRepo.NewPostgresRepository(pool), c.Cache)
	c.AdopterRepo = adopterRepo.NewPostgresRepository(pool)
	c.VolunteerRepo = volunteerRepo.NewPostgresRepository(pool)
	c.VisitRepo = visitRepo.NewPostgresRepository(pool)
	c.UserRepo = authRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	c.ScheduleService = scheduleService.NewScheduleService(c.ScheduleRepo)
	c.AnimalService = animalService.NewAnimalService(c.AnimalRepo, c.ImageStore, c.Images)
	c.AdopterService = adopterService.NewAdopterService(c.AdopterRepo)
	c.VolunteerService = volunteerService.NewVolunteerService(c.VolunteerRepo)
	c.VisitService = visitService.NewVisitService(c.VisitRepo, c.ScheduleRepo, c.AnimalRepo, c.AdopterRepo)
	c.AuthService = authService.NewAuthService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.ScheduleHandler = scheduleHandler.NewScheduleHandler(c.ScheduleService)
	c.AnimalHandler = animalHandler.NewAnimalHandler(c.AnimalService)
	c.AdopterHandler = adopterHandler.NewAdopterHandler(c.AdopterService)
	c.VolunteerHandler = volunteerHandler.NewVolunteerHandler(c.VolunteerService)
	c.VisitHandler = visitHandler.NewVisitHandler(c.VisitService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

// ========================================
// HELPER METHODS
// ========================================

// SeedBootstrapAdmin tạo admin từ BOOTSTRAP_ADMIN_* nếu chưa có; bỏ qua khi chưa cấu hình
func (c *Container) SeedBootstrapAdmin(ctx context.Context) error {
	b := c.Config.Bootstrap
	if b.AdminUsername == "" || b.AdminPassword == "" {
		return nil
	}

	created, err := c.AuthService.EnsureUser(ctx, auth.CreateUserRequest{
		Username:     b.AdminUsername,
		Password:     b.AdminPassword,
		FriendlyName: "Administrator",
		Roles:        []string{shared.RoleAdmin, shared.RoleUser},
	})
	if err != nil {
		return fmt.Errorf("seed bootstrap admin: %w", err)
	}

	if created {
		log.Info().Str("username", b.AdminUsername).Msg("Bootstrap admin created")
	}
	return nil
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	// chờ các lệnh xóa ảnh đang chạy trước khi đóng client
	if c.Images != nil {
		c.Images.Wait()
	}

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close asynq client")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
