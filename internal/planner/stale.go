package planner

import (
	"time"

	"daycraft/internal/model"
	"daycraft/pkg/datemath"
)

// StaleDetector finds todo tasks that keep getting deferred.
type StaleDetector struct {
	StaleDays      int
	DeferThreshold int
}

func NewStaleDetector() StaleDetector {
	return StaleDetector{StaleDays: DefaultStaleDays, DeferThreshold: DefaultDeferThreshold}
}

// StaleTasks returns todo tasks deferred more than DeferThreshold times and
// created more than StaleDays whole days before reference.
func (d StaleDetector) StaleTasks(tasks []model.TaskItem, reference time.Time, cal *datemath.Calendar) []model.TaskItem {
	if cal == nil {
		cal = datemath.UTC()
	}

	out := make([]model.TaskItem, 0)
	for _, t := range tasks {
		if t.Status != model.StatusTodo || t.DeferCount <= d.DeferThreshold {
			continue
		}
		if cal.DaysBetween(t.CreatedAt, reference) > d.StaleDays {
			out = append(out, t)
		}
	}
	return out
}
