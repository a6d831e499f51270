package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"daycraft/internal/model"
	"daycraft/internal/nlp"
	"daycraft/pkg/response"
)

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatYAML     = "yaml"

	markdownTimeLayout = "2006-01-02 15:04:05 -0700"
)

func parseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", formatJSON:
		return formatJSON, nil
	case formatMarkdown, "md":
		return formatMarkdown, nil
	case formatYAML, "yml":
		return formatYAML, nil
	}
	return "", errInvalidFormat
}

// write sends payload in the requested format. JSON goes through the
// response envelope; yaml marshals raw and markdown renders lazily.
func (h *handler) write(c *gin.Context, format string, payload any, raw any, markdown func() string) {
	switch format {
	case formatMarkdown:
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown()))
	case formatYAML:
		b, err := yaml.Marshal(raw)
		if err != nil {
			h.l.Errorf(c.Request.Context(), "task.delivery.http.write: yaml: %v", err)
			response.InternalError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", b)
	default:
		response.OK(c, payload)
	}
}

// renderParsed lists every extracted field of a preview, one per line.
func renderParsed(p nlp.ParsedTask) string {
	lines := []string{"- Title: " + p.Title}
	if p.Status != nil {
		lines = append(lines, "- Status: "+string(*p.Status))
	}
	if p.EstimatedMinutes != nil {
		lines = append(lines, fmt.Sprintf("- Estimate: %dm", *p.EstimatedMinutes))
	}
	if p.DueDate != nil {
		lines = append(lines, "- Due: "+formatMarkdownTime(*p.DueDate))
	}
	if p.ScheduledDate != nil {
		lines = append(lines, "- Scheduled: "+formatMarkdownTime(*p.ScheduledDate))
	}
	if p.Priority != nil {
		lines = append(lines, "- Priority: "+string(*p.Priority))
	}
	if len(p.Tags) > 0 {
		lines = append(lines, "- Tags: "+strings.Join(p.Tags, ", "))
	}
	if p.Project != nil {
		lines = append(lines, "- Project: "+*p.Project)
	}
	if r := p.RecurrenceRule; r != nil {
		lines = append(lines, fmt.Sprintf("- Recurrence: %s every %d", r.Frequency, r.Interval))
	}
	if r := p.Reminder; r != nil {
		if r.MinutesBefore != nil {
			lines = append(lines, fmt.Sprintf("- Reminder: %dm before", *r.MinutesBefore))
		}
		if r.At != nil {
			lines = append(lines, "- Reminder At: "+formatMarkdownTime(*r.At))
		}
	}
	return strings.Join(lines, "\n")
}

// renderTaskList prints one line per task: title, status, due and estimate.
func renderTaskList(tasks []model.TaskItem) string {
	if len(tasks) == 0 {
		return "- (empty)"
	}
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		var sb strings.Builder
		fmt.Fprintf(&sb, "- %s [%s]", t.Title, t.Status)
		if t.DueDate != nil {
			sb.WriteString(" due: " + formatMarkdownTime(*t.DueDate))
		}
		if t.EstimatedMinutes != nil {
			fmt.Fprintf(&sb, " (%dm)", *t.EstimatedMinutes)
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func formatMarkdownTime(t time.Time) string {
	return t.Format(markdownTimeLayout)
}
