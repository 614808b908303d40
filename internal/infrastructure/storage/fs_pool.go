package storage

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// FSPool giới hạn số thao tác filesystem (ghi/xóa temp file) chạy đồng thời
type FSPool struct {
	sem *semaphore.Weighted
}

func NewFSPool(workers int) *FSPool {
	if workers < 1 {
		workers = 1
	}
	return &FSPool{sem: semaphore.NewWeighted(int64(workers))}
}

// Do blocks until a slot is free (or ctx is done) and runs fn in it.
func (p *FSPool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)

	return fn()
}
