package usecase

import (
	"context"

	"github.com/google/uuid"

	"daycraft/internal/model"
	"daycraft/internal/task"
	repo "daycraft/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	item, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: item}, nil
}

// Defer bumps the defer counter of an open task.
func (uc *implUseCase) Defer(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	item, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	if !item.IsOpen() {
		return task.DetailOutput{}, task.ErrTaskNotOpen
	}

	item.DeferCount++
	item.UpdatedAt = uc.now()

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{Task: item})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Defer UpdateTask: %v", err)
		return task.DetailOutput{}, err
	}
	if updated.ID == uuid.Nil {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}

	uc.l.Infof(ctx, "uc.Defer: user=%s task=%s defer_count=%d", sc.UserID, updated.ID, updated.DeferCount)
	return task.DetailOutput{Task: updated}, nil
}

func (uc *implUseCase) getTask(ctx context.Context, rawID string) (model.TaskItem, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return model.TaskItem{}, task.ErrInvalidID
	}

	item, err := uc.repo.GetTask(ctx, repo.GetTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask GetTask: %v", err)
		return model.TaskItem{}, err
	}
	if item.ID == uuid.Nil {
		return model.TaskItem{}, task.ErrTaskNotFound
	}
	return item, nil
}
