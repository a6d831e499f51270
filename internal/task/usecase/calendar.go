package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daycraft/internal/model"
	"daycraft/pkg/gcalendar"
)

const defaultEventMinutes = 60

// tryBookEvent books a calendar event for a scheduled task and returns its
// link. Failures are logged and never fail the caller.
func (uc *implUseCase) tryBookEvent(ctx context.Context, item model.TaskItem, reminderMinutes *int) string {
	if uc.events == nil || item.ScheduledDate == nil {
		return ""
	}

	minutes := defaultEventMinutes
	if item.EstimatedMinutes != nil && *item.EstimatedMinutes > 0 {
		minutes = *item.EstimatedMinutes
	}
	start := *item.ScheduledDate

	event, err := uc.events.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      uc.cfg.CalendarID,
		Summary:         item.Title,
		Description:     eventDescription(item),
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		Timezone:        uc.calendar.Location().String(),
		ReminderMinutes: reminderMinutes,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.tryBookEvent: calendar event for %s failed (non-fatal): %v", item.ID, err)
		return ""
	}
	return event.HTMLLink
}

func eventDescription(item model.TaskItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Priority: %s\n", item.Priority)
	if item.Project != "" {
		fmt.Fprintf(&sb, "Project: %s\n", item.Project)
	}
	if len(item.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(item.Tags, ", "))
	}
	if item.Notes != "" {
		sb.WriteString("\n")
		sb.WriteString(item.Notes)
	}
	fmt.Fprintf(&sb, "\ndaycraft:%s", item.ID)
	return strings.TrimSpace(sb.String())
}
