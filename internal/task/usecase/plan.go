package usecase

import (
	"context"

	"daycraft/internal/filter"
	"daycraft/internal/model"
	"daycraft/internal/planner"
	"daycraft/internal/task"
)

// Prioritize ranks open tasks. A time window needs both ends.
func (uc *implUseCase) Prioritize(ctx context.Context, sc model.Scope, input task.PrioritizeInput) (task.ListOutput, error) {
	window, err := timeWindow(input)
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Prioritize ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	now := uc.now()
	open := make([]model.TaskItem, 0, len(tasks))
	for _, t := range (filter.Filter{Expression: input.Filter}).Apply(tasks, now, uc.calendar) {
		if t.IsOpen() {
			open = append(open, t)
		}
	}

	focus := &planner.FocusProfile{PrefersDeepWorkMorning: uc.cfg.DeepWorkMorning}
	return task.ListOutput{Tasks: uc.prioritizer.Prioritize(open, now, window, focus)}, nil
}

func timeWindow(input task.PrioritizeInput) (*planner.TimeWindow, error) {
	switch {
	case input.WindowStart == nil && input.WindowEnd == nil:
		return nil, nil
	case input.WindowStart == nil || input.WindowEnd == nil:
		return nil, task.ErrInvalidWindow
	case input.WindowEnd.Before(*input.WindowStart):
		return nil, task.ErrInvalidWindow
	}
	return &planner.TimeWindow{Start: *input.WindowStart, End: *input.WindowEnd}, nil
}

func (uc *implUseCase) Stale(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stale ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: uc.stale.StaleTasks(tasks, uc.now(), uc.calendar)}, nil
}

func (uc *implUseCase) RealityCheck(ctx context.Context, sc model.Scope, input task.RealityCheckInput) (planner.RealityCheckResult, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RealityCheck ListTasks: %v", err)
		return planner.RealityCheckResult{}, err
	}

	capacity := input.CapacityMinutes
	if capacity <= 0 {
		capacity = uc.cfg.CapacityMinutes
	}

	result := uc.reality.Evaluate(tasks, capacity)
	if result.IsOverloaded() {
		uc.l.Infof(ctx, "uc.RealityCheck: user=%s overloaded by %d minutes", sc.UserID, result.ExcessMinutes)
	}
	return result, nil
}

func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope) (planner.InsightSummary, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights ListTasks: %v", err)
		return planner.InsightSummary{}, err
	}
	return uc.insights.Summarize(tasks), nil
}
