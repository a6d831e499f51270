package nlp

import (
	"time"

	"github.com/google/uuid"

	"daycraft/internal/model"
)

// ToTaskItem turns a preview into a new stored task. Absent status and
// priority fall back to todo and normal.
func (t ParsedTask) ToTaskItem(now time.Time) model.TaskItem {
	item := model.TaskItem{
		ID:               uuid.New(),
		Title:            t.Title,
		Status:           model.StatusTodo,
		EstimatedMinutes: t.EstimatedMinutes,
		DueDate:          t.DueDate,
		StartDate:        t.StartDate,
		ScheduledDate:    t.ScheduledDate,
		CompletedAt:      t.CompletedAt,
		Priority:         model.PriorityNormal,
		Tags:             append([]string{}, t.Tags...),
		Attachments:      []model.Attachment{},
		RecurrenceRule:   t.RecurrenceRule,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if t.Status != nil {
		item.Status = *t.Status
	}
	if t.Priority != nil {
		item.Priority = *t.Priority
	}
	if t.Project != nil {
		item.Project = *t.Project
	}
	if item.Status == model.StatusDone && item.CompletedAt == nil {
		item.CompletedAt = &now
	}
	return item
}
