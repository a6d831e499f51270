package usecase

import (
	"context"

	"daycraft/internal/filter"
	"daycraft/internal/model"
	"daycraft/internal/task"
)

// List returns stored tasks narrowed by the given fields and expression.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	f := filter.Filter{
		Tags:       input.Tags,
		Project:    input.Project,
		Expression: input.Filter,
	}
	if input.Status != "" {
		status, err := model.ParseTaskStatus(input.Status)
		if err != nil {
			return task.ListOutput{}, task.ErrInvalidStatus
		}
		f.Status = &status
	}

	return uc.filtered(ctx, "uc.List", f)
}

// Export returns tasks matching a filter expression only.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input task.ExportInput) (task.ListOutput, error) {
	return uc.filtered(ctx, "uc.Export", filter.Filter{Expression: input.Filter})
}

func (uc *implUseCase) filtered(ctx context.Context, op string, f filter.Filter) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s ListTasks: %v", op, err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: f.Apply(tasks, uc.now(), uc.calendar)}, nil
}
