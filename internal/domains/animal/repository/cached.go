package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/domains/animal"
	"shelter-backend/pkg/cache"
)

const (
	animalCacheKeyPrefix = "animal:"
	cacheTTL             = 15 * time.Minute
	versionTTL           = 4 * cacheTTL
)

// cachedRepository - read-through cache cho GetByID.
// Mỗi animal có một version key; entry được lưu dưới "animal:{id}:{version}".
// Update/Delete đổi version sau khi ghi DB nên một lần đọc đang chạy dở chỉ có thể
// ghi vào namespace cũ, không ai đọc lại nữa.
// Lỗi cache chỉ log, không làm fail request.
type cachedRepository struct {
	next  animal.Repository
	cache cache.Cache
}

func NewCachedRepository(next animal.Repository, c cache.Cache) animal.Repository {
	return &cachedRepository{next: next, cache: c}
}

func versionKey(id int64) string {
	return animalCacheKeyPrefix + strconv.FormatInt(id, 10) + ":v"
}

func entryKey(id int64, version string) string {
	return animalCacheKeyPrefix + strconv.FormatInt(id, 10) + ":" + version
}

func (r *cachedRepository) Create(ctx context.Context, a *animal.Animal) (*animal.Animal, error) {
	return r.next.Create(ctx, a)
}

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (*animal.Animal, error) {
	version, ok := r.currentVersion(ctx, id)
	if !ok {
		return r.next.GetByID(ctx, id)
	}
	key := entryKey(id, version)

	var a animal.Animal
	hit, err := r.cache.Get(ctx, key, &a)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[CACHE] get failed")
	}
	if err == nil && hit {
		return &a, nil
	}

	found, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, found, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[CACHE] set failed")
	}
	return found, nil
}

// currentVersion trả về version hiện tại, tạo mới nếu chưa có.
// Version mới luôn được set trước khi đọc DB.
func (r *cachedRepository) currentVersion(ctx context.Context, id int64) (string, bool) {
	key := versionKey(id)

	var version string
	hit, err := r.cache.Get(ctx, key, &version)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[CACHE] get version failed")
		return "", false
	}
	if hit && version != "" {
		return version, true
	}

	version = uuid.NewString()
	if err := r.cache.Set(ctx, key, version, versionTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[CACHE] set version failed")
		return "", false
	}
	return version, true
}

func (r *cachedRepository) List(ctx context.Context) ([]animal.Animal, error) {
	return r.next.List(ctx)
}

func (r *cachedRepository) ListByAvailability(ctx context.Context, isAvailable bool) ([]animal.Animal, error) {
	return r.next.ListByAvailability(ctx, isAvailable)
}

func (r *cachedRepository) Update(ctx context.Context, a *animal.Animal) (*animal.Animal, error) {
	updated, err := r.next.Update(ctx, a)
	r.invalidate(ctx, a.ID)
	return updated, err
}

func (r *cachedRepository) Delete(ctx context.Context, id int64) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

// invalidate đổi version, entry cũ tự hết hạn theo TTL
func (r *cachedRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Set(ctx, versionKey(id), uuid.NewString(), versionTTL); err != nil {
		log.Warn().Err(err).Int64("animal_id", id).Msg("[CACHE] invalidate failed")
	}
}
