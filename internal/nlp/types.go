package nlp

import (
	"time"

	"daycraft/internal/model"
)

// ParsedTask is the structured preview extracted from one line of free text.
// Absent signals are nil; Tags is never nil.
type ParsedTask struct {
	Title            string                `json:"title" yaml:"title"`
	Status           *model.TaskStatus     `json:"status,omitempty" yaml:"status,omitempty"`
	EstimatedMinutes *int                  `json:"estimatedMinutes,omitempty" yaml:"estimatedMinutes,omitempty"`
	DueDate          *time.Time            `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	StartDate        *time.Time            `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	ScheduledDate    *time.Time            `json:"scheduledDate,omitempty" yaml:"scheduledDate,omitempty"`
	CompletedAt      *time.Time            `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	Priority         *model.TaskPriority   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Tags             []string              `json:"tags" yaml:"tags"`
	Project          *string               `json:"project,omitempty" yaml:"project,omitempty"`
	RecurrenceRule   *model.RecurrenceRule `json:"recurrenceRule,omitempty" yaml:"recurrenceRule,omitempty"`
	Reminder         *ParsedReminder       `json:"reminder,omitempty" yaml:"reminder,omitempty"`
}

// ParsedReminder carries either a relative offset or an absolute instant.
type ParsedReminder struct {
	MinutesBefore *int       `json:"minutesBefore,omitempty" yaml:"minutesBefore,omitempty"`
	At            *time.Time `json:"at,omitempty" yaml:"at,omitempty"`
}

// timeOfDay is a meridiem-resolved wall clock time. Hour may exceed 23 when
// the input did (e.g. "25-01"); combining normalizes it into the next day.
type timeOfDay struct {
	hour   int
	minute int
}

func (t timeOfDay) minutes() int {
	return t.hour*60 + t.minute
}

type timeRange struct {
	start           timeOfDay
	end             timeOfDay
	durationMinutes int
}
