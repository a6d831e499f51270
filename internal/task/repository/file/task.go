package file

import (
	"context"

	"daycraft/internal/model"
	repo "daycraft/internal/task/repository"
)

func (r *implRepository) ListTasks(ctx context.Context) ([]model.TaskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToLoad
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.TaskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.TaskItem{}, repo.ErrFailedToGet
	}
	for _, t := range tasks {
		if t.ID == opt.ID {
			return t, nil
		}
	}
	return model.TaskItem{}, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.TaskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load()
	if err != nil {
		r.l.Errorf(ctx, "%s load: %v", r.dsn("CreateTask"), err)
		return model.TaskItem{}, repo.ErrFailedToInsert
	}
	for _, t := range tasks {
		if t.ID == opt.Task.ID {
			return model.TaskItem{}, repo.ErrDuplicateID
		}
	}

	tasks = append(tasks, opt.Task)
	if err := r.save(tasks); err != nil {
		r.l.Errorf(ctx, "%s save: %v", r.dsn("CreateTask"), err)
		return model.TaskItem{}, repo.ErrFailedToInsert
	}
	return opt.Task, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.TaskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load()
	if err != nil {
		r.l.Errorf(ctx, "%s load: %v", r.dsn("UpdateTask"), err)
		return model.TaskItem{}, repo.ErrFailedToUpdate
	}

	found := false
	for i := range tasks {
		if tasks[i].ID == opt.Task.ID {
			tasks[i] = opt.Task
			found = true
			break
		}
	}
	if !found {
		return model.TaskItem{}, nil
	}

	if err := r.save(tasks); err != nil {
		r.l.Errorf(ctx, "%s save: %v", r.dsn("UpdateTask"), err)
		return model.TaskItem{}, repo.ErrFailedToUpdate
	}
	return opt.Task, nil
}

func (r *implRepository) ReplaceAll(ctx context.Context, tasks []model.TaskItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(tasks); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceAll"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
