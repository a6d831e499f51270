package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"daycraft/internal/model"
	"daycraft/internal/task"
	repo "daycraft/internal/task/repository"
)

// Create stores a task built from explicit fields.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	item, err := uc.buildTask(input)
	if err != nil {
		return task.CreateOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Task: item})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	link := uc.tryBookEvent(ctx, created, nil)

	uc.l.Infof(ctx, "uc.Create: user=%s created task %s %q", sc.UserID, created.ID, created.Title)
	return task.CreateOutput{Task: created, CalendarLink: link}, nil
}

// buildTask validates input and fills defaults: todo, normal, interval 1.
func (uc *implUseCase) buildTask(input task.CreateInput) (model.TaskItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.TaskItem{}, task.ErrEmptyTitle
	}

	status := model.StatusTodo
	if input.Status != "" {
		s, err := model.ParseTaskStatus(input.Status)
		if err != nil {
			return model.TaskItem{}, task.ErrInvalidStatus
		}
		status = s
	}

	priority := model.PriorityNormal
	if input.Priority != "" {
		p, err := model.ParseTaskPriority(input.Priority)
		if err != nil {
			return model.TaskItem{}, task.ErrInvalidPriority
		}
		priority = p
	}

	projectID, err := parseOptionalID(input.ProjectID)
	if err != nil {
		return model.TaskItem{}, err
	}
	parentID, err := parseOptionalID(input.ParentID)
	if err != nil {
		return model.TaskItem{}, err
	}

	attachments, err := buildAttachments(input.Attachments)
	if err != nil {
		return model.TaskItem{}, err
	}

	recurrence, err := buildRecurrence(input.Recurrence)
	if err != nil {
		return model.TaskItem{}, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := uc.now()
	return model.TaskItem{
		ID:               uuid.New(),
		Title:            title,
		Status:           status,
		EstimatedMinutes: input.EstimatedMinutes,
		DueDate:          input.DueDate,
		StartDate:        input.StartDate,
		ScheduledDate:    input.ScheduledDate,
		CompletedAt:      input.CompletedAt,
		Priority:         priority,
		Tags:             tags,
		Project:          input.Project,
		ProjectID:        projectID,
		ParentID:         parentID,
		Notes:            input.Notes,
		Attachments:      attachments,
		RecurrenceRule:   recurrence,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func parseOptionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, task.ErrInvalidID
	}
	return &id, nil
}

func buildAttachments(inputs []task.AttachmentInput) ([]model.Attachment, error) {
	attachments := make([]model.Attachment, 0, len(inputs))
	for _, in := range inputs {
		kind, err := model.ParseAttachmentType(in.Type)
		if err != nil || strings.TrimSpace(in.URL) == "" {
			return nil, task.ErrInvalidAttachment
		}
		attachments = append(attachments, model.Attachment{
			ID:    uuid.New(),
			Type:  kind,
			URL:   in.URL,
			Title: in.Title,
		})
	}
	return attachments, nil
}

func buildRecurrence(in *task.RecurrenceInput) (*model.RecurrenceRule, error) {
	if in == nil || in.Frequency == "" {
		return nil, nil
	}
	freq, err := model.ParseRecurrenceFrequency(in.Frequency)
	if err != nil {
		return nil, task.ErrInvalidFrequency
	}
	interval := in.Interval
	if interval <= 0 {
		interval = 1
	}
	var days []int
	for _, d := range in.DaysOfWeek {
		if d < 1 || d > 7 {
			return nil, task.ErrInvalidWeekday
		}
		days = append(days, d)
	}
	return &model.RecurrenceRule{
		Frequency:  freq,
		Interval:   interval,
		DaysOfWeek: days,
		EndDate:    in.EndDate,
	}, nil
}
