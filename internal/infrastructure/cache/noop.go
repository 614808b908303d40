package cache

import (
	"context"
	"time"

	"shelter-backend/pkg/cache"
)

// NoopCache is used when Redis is disabled or unreachable: every read misses.
type NoopCache struct{}

var _ cache.Cache = NoopCache{}

func (NoopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (NoopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopCache) Delete(context.Context, ...string) error { return nil }

func (NoopCache) Ping(context.Context) error { return nil }
