package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrEmptyTitle        = errors.New("title is required")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidID         = errors.New("invalid task id")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidPriority   = errors.New("invalid task priority")
	ErrInvalidFrequency  = errors.New("invalid recurrence frequency")
	ErrInvalidWeekday    = errors.New("recurrence days must be 1 (Sunday) to 7 (Saturday)")
	ErrInvalidAttachment = errors.New("invalid attachment")
	ErrInvalidWindow     = errors.New("time window needs both ends, end not before start")
	ErrTaskNotOpen       = errors.New("task is not open")
)
