package model

import (
	"errors"
	"strings"
)

var (
	ErrUnknownStatus         = errors.New("unknown task status")
	ErrUnknownPriority       = errors.New("unknown task priority")
	ErrUnknownFrequency      = errors.New("unknown recurrence frequency")
	ErrUnknownAttachmentType = errors.New("unknown attachment type")
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inProgress"
	StatusDone       TaskStatus = "done"
	StatusIcebox     TaskStatus = "icebox"
	StatusDropped    TaskStatus = "dropped"
)

// ParseTaskStatus accepts the raw enum values case-insensitively.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo":
		return StatusTodo, nil
	case "inprogress", "in-progress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	case "icebox":
		return StatusIcebox, nil
	case "dropped":
		return StatusDropped, nil
	}
	return "", ErrUnknownStatus
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityNormal   TaskPriority = "normal"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func ParseTaskPriority(s string) (TaskPriority, error) {
	switch p := TaskPriority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical:
		return p, nil
	}
	return "", ErrUnknownPriority
}

// Weight orders priorities from low (1) to critical (4).
func (p TaskPriority) Weight() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type RecurrenceFrequency string

const (
	FrequencyDaily   RecurrenceFrequency = "daily"
	FrequencyWeekly  RecurrenceFrequency = "weekly"
	FrequencyMonthly RecurrenceFrequency = "monthly"
	FrequencyYearly  RecurrenceFrequency = "yearly"
)

func ParseRecurrenceFrequency(s string) (RecurrenceFrequency, error) {
	switch f := RecurrenceFrequency(strings.ToLower(strings.TrimSpace(s))); f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return f, nil
	}
	return "", ErrUnknownFrequency
}

type AttachmentType string

const (
	AttachmentLink  AttachmentType = "link"
	AttachmentImage AttachmentType = "image"
	AttachmentFile  AttachmentType = "file"
)

func ParseAttachmentType(s string) (AttachmentType, error) {
	switch a := AttachmentType(strings.ToLower(strings.TrimSpace(s))); a {
	case AttachmentLink, AttachmentImage, AttachmentFile:
		return a, nil
	}
	return "", ErrUnknownAttachmentType
}
