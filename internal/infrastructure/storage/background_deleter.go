package storage

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Deleter là phía nhận việc xóa: MinIOImageStore (inline) hoặc
// queue.ImageCleanupEnqueuer (worker xóa)
type Deleter interface {
	DeleteImage(ctx context.Context, url string)
}

// BackgroundDeleter chạy DeleteImage trên goroutine riêng, caller không chờ.
// Context của request bị bỏ cancel để việc xóa không chết theo response.
type BackgroundDeleter struct {
	target  Deleter
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewBackgroundDeleter(target Deleter, timeout time.Duration) *BackgroundDeleter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BackgroundDeleter{target: target, timeout: timeout}
}

func (d *BackgroundDeleter) DeleteImage(ctx context.Context, url string) {
	if url == "" {
		return
	}

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("url", url).Msg("[STORAGE] Panic while deleting image")
			}
		}()

		d.target.DeleteImage(bg, url)
	}()
}

// Wait blocks until in-flight deletions finish (graceful shutdown, tests)
func (d *BackgroundDeleter) Wait() {
	d.wg.Wait()
}
