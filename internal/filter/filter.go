package filter

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"daycraft/internal/model"
	"daycraft/pkg/datemath"
)

// Filter narrows a task collection. Zero fields apply no restriction; all
// set fields must match.
type Filter struct {
	Status     *model.TaskStatus
	Tags       []string
	Project    string
	Expression string
}

// Apply returns the tasks matching f, keeping their input order. Relative
// tokens in the expression are evaluated against now in cal.
func (f Filter) Apply(tasks []model.TaskItem, now time.Time, cal *datemath.Calendar) []model.TaskItem {
	if cal == nil {
		cal = datemath.UTC()
	}

	result := append([]model.TaskItem{}, tasks...)

	if f.Status != nil {
		status := *f.Status
		result = keep(result, func(t model.TaskItem) bool { return t.Status == status })
	}
	if len(f.Tags) > 0 {
		result = keep(result, func(t model.TaskItem) bool { return hasAllTags(t.Tags, f.Tags) })
	}
	if f.Project != "" {
		result = keep(result, func(t model.TaskItem) bool { return matchesProject(t, f.Project) })
	}
	if strings.TrimSpace(f.Expression) != "" {
		result = applyExpression(f.Expression, result, now, cal)
	}
	return result
}

// applyExpression narrows tasks one token at a time. Unknown tokens are
// ignored.
func applyExpression(expression string, tasks []model.TaskItem, now time.Time, cal *datemath.Calendar) []model.TaskItem {
	result := tasks
	today := cal.StartOfDay(now)

	for _, raw := range strings.Fields(expression) {
		token := strings.ToLower(raw)

		switch {
		case token == "+today":
			result = keep(result, dueWithin(today, cal.AddDays(today, 1)))
		case token == "+tomorrow":
			tomorrow := cal.AddDays(today, 1)
			result = keep(result, dueWithin(tomorrow, cal.AddDays(tomorrow, 1)))
		case token == "+week":
			result = keep(result, dueWithin(today, cal.AddDays(today, 7)))
		case token == "+thisweek":
			start := cal.StartOfWeek(now)
			result = keep(result, dueWithin(start, cal.AddDays(start, 7)))
		case token == "!overdue" || token == "+overdue":
			result = keep(result, func(t model.TaskItem) bool {
				return t.DueDate != nil && t.DueDate.Before(now) && t.Status != model.StatusDone
			})
		case strings.HasPrefix(token, "-#"):
			tag := token[2:]
			result = keep(result, func(t model.TaskItem) bool { return !hasTag(t.Tags, tag) })
		case strings.HasPrefix(token, "#"):
			tag := token[1:]
			result = keep(result, func(t model.TaskItem) bool { return hasTag(t.Tags, tag) })
		case strings.HasPrefix(token, "@"):
			project := raw[1:]
			result = keep(result, func(t model.TaskItem) bool { return matchesProject(t, project) })
		default:
			if status, ok := statusToken(token); ok {
				result = keep(result, func(t model.TaskItem) bool { return t.Status == status })
			} else if priority, ok := priorityToken(token); ok {
				result = keep(result, func(t model.TaskItem) bool { return t.Priority == priority })
			}
		}
	}
	return result
}

func keep(tasks []model.TaskItem, pred func(model.TaskItem) bool) []model.TaskItem {
	out := make([]model.TaskItem, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// dueWithin matches due dates in [start, end).
func dueWithin(start, end time.Time) func(model.TaskItem) bool {
	return func(t model.TaskItem) bool {
		if t.DueDate == nil {
			return false
		}
		return !t.DueDate.Before(start) && t.DueDate.Before(end)
	}
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func hasAllTags(tags, want []string) bool {
	for _, w := range want {
		if !hasTag(tags, w) {
			return false
		}
	}
	return true
}

// matchesProject accepts a project id or a project name.
func matchesProject(t model.TaskItem, project string) bool {
	if id, err := uuid.Parse(project); err == nil {
		return t.ProjectID != nil && *t.ProjectID == id
	}
	return t.Project != "" && strings.EqualFold(t.Project, project)
}

func statusToken(token string) (model.TaskStatus, bool) {
	switch token {
	case "/todo":
		return model.StatusTodo, true
	case "/inprogress", "/in-progress":
		return model.StatusInProgress, true
	case "/done":
		return model.StatusDone, true
	case "/icebox":
		return model.StatusIcebox, true
	case "/drop", "/dropped":
		return model.StatusDropped, true
	}
	return "", false
}

func priorityToken(token string) (model.TaskPriority, bool) {
	switch token {
	case "p1", "critical":
		return model.PriorityCritical, true
	case "p2", "high":
		return model.PriorityHigh, true
	case "normal":
		return model.PriorityNormal, true
	case "low":
		return model.PriorityLow, true
	}
	return "", false
}
