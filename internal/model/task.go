package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskItem is a stored task.
type TaskItem struct {
	ID               uuid.UUID       `json:"id" yaml:"id"`
	Title            string          `json:"title" yaml:"title"`
	Status           TaskStatus      `json:"status" yaml:"status"`
	EstimatedMinutes *int            `json:"estimatedMinutes,omitempty" yaml:"estimatedMinutes,omitempty"`
	DueDate          *time.Time      `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	StartDate        *time.Time      `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	ScheduledDate    *time.Time      `json:"scheduledDate,omitempty" yaml:"scheduledDate,omitempty"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	Priority         TaskPriority    `json:"priority" yaml:"priority"`
	Tags             []string        `json:"tags" yaml:"tags"`
	Project          string          `json:"project,omitempty" yaml:"project,omitempty"` // Project name as typed by the user
	ProjectID        *uuid.UUID      `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	ParentID         *uuid.UUID      `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Notes            string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Attachments      []Attachment    `json:"attachments" yaml:"attachments"`
	RecurrenceRule   *RecurrenceRule `json:"recurrenceRule,omitempty" yaml:"recurrenceRule,omitempty"`
	DeferCount       int             `json:"deferCount" yaml:"deferCount"`
	IceboxReason     string          `json:"iceboxReason,omitempty" yaml:"iceboxReason,omitempty"`
	CreatedAt        time.Time       `json:"createdAt" yaml:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt" yaml:"updatedAt"`
}

// IsOpen reports whether the task still needs work.
func (t TaskItem) IsOpen() bool {
	return t.Status == StatusTodo || t.Status == StatusInProgress
}

// Project groups tasks.
type Project struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Icon     string    `json:"icon"`
	Archived bool      `json:"archived"`
}

type Tag struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

type Attachment struct {
	ID    uuid.UUID      `json:"id" yaml:"id"`
	Type  AttachmentType `json:"type" yaml:"type"`
	URL   string         `json:"url" yaml:"url"`
	Title string         `json:"title,omitempty" yaml:"title,omitempty"`
}

// RecurrenceRule describes how a task repeats. DaysOfWeek uses 1..7 with Sunday=1.
type RecurrenceRule struct {
	Frequency  RecurrenceFrequency `json:"frequency" yaml:"frequency"`
	Interval   int                 `json:"interval" yaml:"interval"`
	DaysOfWeek []int               `json:"daysOfWeek,omitempty" yaml:"daysOfWeek,omitempty"`
	EndDate    *time.Time          `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}
