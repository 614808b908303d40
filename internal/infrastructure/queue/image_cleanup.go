package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ImageCleanupEnqueuer thay cho xóa ảnh inline: API chỉ enqueue task,
// cmd/worker thực hiện RemoveObject
type ImageCleanupEnqueuer struct {
	client Enqueuer
	queue  string
}

func NewImageCleanupEnqueuer(client Enqueuer, queue string) *ImageCleanupEnqueuer {
	if queue == "" {
		queue = QueueImages
	}
	return &ImageCleanupEnqueuer{client: client, queue: queue}
}

// DeleteImage enqueues the deletion. Best effort, no retries.
func (e *ImageCleanupEnqueuer) DeleteImage(ctx context.Context, url string) {
	task, err := NewDeleteImageTask(url)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("[QUEUE] Failed to build delete image task")
		return
	}

	info, err := e.client.EnqueueContext(ctx, task, asynq.Queue(e.queue), asynq.MaxRetry(0))
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("[QUEUE] Failed to enqueue delete image task")
		return
	}

	log.Debug().Str("task_id", info.ID).Str("url", url).Msg("[QUEUE] Delete image task enqueued")
}

// ImageDeleter là storage side của task, implemented by storage.MinIOImageStore
type ImageDeleter interface {
	DeleteImage(ctx context.Context, url string)
}

// DeleteImageHandler xử lý animal:delete_image trong worker
type DeleteImageHandler struct {
	store ImageDeleter
}

func NewDeleteImageHandler(store ImageDeleter) *DeleteImageHandler {
	return &DeleteImageHandler{store: store}
}

func (h *DeleteImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload DeleteImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal DeleteImage payload")
		// payload hỏng thì retry cũng vô ích
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if payload.URL == "" {
		return nil
	}

	log.Info().Str("url", payload.URL).Msg("Deleting animal image")
	h.store.DeleteImage(ctx, payload.URL)

	return nil
}
