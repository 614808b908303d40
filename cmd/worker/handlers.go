package main

import (
	"github.com/hibiken/asynq"

	"shelter-backend/internal/infrastructure/queue"
)

// HandlerRegistry holds all task handlers
type HandlerRegistry struct {
	DeleteImage *queue.DeleteImageHandler
}

// initializeHandlers creates all handler instances
func initializeHandlers(store queue.ImageDeleter) *HandlerRegistry {
	return &HandlerRegistry{
		DeleteImage: queue.NewDeleteImageHandler(store),
	}
}

// RegisterHandlers registers all handlers with the mux
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Animal image cleanup
	mux.HandleFunc(queue.TypeDeleteAnimalImage, r.DeleteImage.ProcessTask)
}
