package task

import (
	"time"

	"daycraft/internal/model"
	"daycraft/internal/nlp"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Text      string
	Reference *time.Time // defaults to now
}

type CreateFromTextInput struct {
	Text      string
	Reference *time.Time
}

// CreateInput carries explicit task fields. Enum fields are raw strings and
// are validated by the use case; empty values take the defaults.
type CreateInput struct {
	Title            string
	Status           string
	EstimatedMinutes *int
	DueDate          *time.Time
	StartDate        *time.Time
	ScheduledDate    *time.Time
	CompletedAt      *time.Time
	Priority         string
	Tags             []string
	Project          string
	ProjectID        string
	ParentID         string
	Notes            string
	Attachments      []AttachmentInput
	Recurrence       *RecurrenceInput
}

type AttachmentInput struct {
	Type  string
	URL   string
	Title string
}

type RecurrenceInput struct {
	Frequency  string
	Interval   int
	DaysOfWeek []int
	EndDate    *time.Time
}

type ListInput struct {
	Status  string
	Tags    []string
	Project string
	Filter  string
}

type ExportInput struct {
	Filter string
}

type PrioritizeInput struct {
	Filter      string
	WindowStart *time.Time
	WindowEnd   *time.Time
}

type RealityCheckInput struct {
	CapacityMinutes int // zero uses the configured capacity
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Task nlp.ParsedTask
}

type CreateOutput struct {
	Task         model.TaskItem
	CalendarLink string // empty when no event was booked
}

type DetailOutput struct {
	Task model.TaskItem
}

type ListOutput struct {
	Tasks []model.TaskItem
}
