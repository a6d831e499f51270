package repository

import (
	"context"

	"daycraft/internal/model"
)

// Repository is the task collection store. Implementations keep insertion
// order on List.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.TaskItem, error)

	// GetTask returns a zero TaskItem (ID == uuid.Nil) when nothing matches.
	GetTask(ctx context.Context, opt GetTaskOptions) (model.TaskItem, error)

	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.TaskItem, error)

	// UpdateTask replaces a stored task by ID. A zero TaskItem is returned
	// when the task does not exist.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.TaskItem, error)

	// ReplaceAll swaps the whole collection in one write.
	ReplaceAll(ctx context.Context, tasks []model.TaskItem) error
}
