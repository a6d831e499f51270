package usecase

import (
	"context"
	"strings"

	"daycraft/internal/model"
	"daycraft/internal/task"
	repo "daycraft/internal/task/repository"
)

// Parse previews free text. Empty text yields an empty preview.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input task.ParseInput) (task.ParseOutput, error) {
	parsed := uc.parser.Parse(strings.TrimSpace(input.Text), uc.reference(input.Reference))
	uc.l.Debugf(ctx, "uc.Parse: user=%s title=%q tags=%d", sc.UserID, parsed.Title, len(parsed.Tags))
	return task.ParseOutput{Task: parsed}, nil
}

// CreateFromText parses text and stores the result as a new task.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateFromTextInput) (task.CreateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	parsed := uc.parser.Parse(text, uc.reference(input.Reference))
	if parsed.Title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	item := parsed.ToTaskItem(uc.now())
	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Task: item})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromText CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	var reminder *int
	if parsed.Reminder != nil {
		reminder = parsed.Reminder.MinutesBefore
	}
	link := uc.tryBookEvent(ctx, created, reminder)

	uc.l.Infof(ctx, "uc.CreateFromText: user=%s created task %s %q", sc.UserID, created.ID, created.Title)
	return task.CreateOutput{Task: created, CalendarLink: link}, nil
}
