package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeDeleteAnimalImage = "animal:delete_image"

	QueueImages = "images"
)

// DeleteImagePayload là payload của task animal:delete_image
type DeleteImagePayload struct {
	URL string `json:"url"`
}

func NewDeleteImageTask(url string) (*asynq.Task, error) {
	payload, err := json.Marshal(DeleteImagePayload{URL: url})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(TypeDeleteAnimalImage, payload), nil
}
