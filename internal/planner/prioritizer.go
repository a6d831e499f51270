package planner

import (
	"sort"
	"time"

	"daycraft/internal/model"
)

const deepWorkMinutes = 60

// Prioritizer orders tasks by a score built from priority, due urgency, the
// caller's focus profile and the planned time window.
type Prioritizer struct{}

// Prioritize returns a sorted copy of tasks, highest score first. Equal scores
// fall back to the earliest due date, then dated before undated, then title.
func (Prioritizer) Prioritize(tasks []model.TaskItem, now time.Time, window *TimeWindow, focus *FocusProfile) []model.TaskItem {
	items := make([]scoredTask, len(tasks))
	for i, t := range tasks {
		items[i] = scoredTask{task: t, score: Score(t, now, window, focus)}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return less(items[a], items[b])
	})

	out := make([]model.TaskItem, len(items))
	for i, item := range items {
		out[i] = item.task
	}
	return out
}

type scoredTask struct {
	task  model.TaskItem
	score int
}

func less(l, r scoredTask) bool {
	if l.score != r.score {
		return l.score > r.score
	}
	lhs, rhs := l.task, r.task
	switch {
	case lhs.DueDate != nil && rhs.DueDate != nil:
		return lhs.DueDate.Before(*rhs.DueDate)
	case lhs.DueDate == nil && rhs.DueDate != nil:
		return false
	case lhs.DueDate != nil && rhs.DueDate == nil:
		return true
	}
	return lhs.Title < rhs.Title
}

// Score rates a single task. Overdue tasks count as due within a day.
func Score(task model.TaskItem, now time.Time, window *TimeWindow, focus *FocusProfile) int {
	score := 0

	switch task.Priority {
	case model.PriorityCritical:
		score += 40
	case model.PriorityHigh:
		score += 30
	case model.PriorityNormal:
		score += 20
	case model.PriorityLow:
		score += 10
	}

	if task.DueDate != nil {
		hoursUntilDue := int(task.DueDate.Sub(now).Hours())
		switch {
		case hoursUntilDue < 24:
			score += 15
		case hoursUntilDue < 72:
			score += 10
		case hoursUntilDue < 168:
			score += 5
		}
	}

	if focus != nil && focus.PrefersDeepWorkMorning &&
		task.EstimatedMinutes != nil && *task.EstimatedMinutes >= deepWorkMinutes {
		score += 5
	}

	if window != nil && task.ScheduledDate != nil && window.Contains(*task.ScheduledDate) {
		score += 3
	}

	return score
}
