package repository

import (
	"github.com/google/uuid"

	"daycraft/internal/model"
)

type GetTaskOptions struct {
	ID uuid.UUID
}

// CreateTaskOptions holds a fully built task. ID and timestamps must already
// be set by the caller.
type CreateTaskOptions struct {
	Task model.TaskItem
}

type UpdateTaskOptions struct {
	Task model.TaskItem
}
