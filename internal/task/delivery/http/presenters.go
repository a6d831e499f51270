package http

import (
	"strings"
	"time"

	"daycraft/internal/model"
	"daycraft/internal/nlp"
	"daycraft/internal/planner"
	"daycraft/internal/task"
	"daycraft/pkg/datemath"
	"daycraft/pkg/response"
)

// Accepted date argument layouts, tried in order. Layouts without an offset
// are read in the handler's calendar.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

var timeNow = time.Now

// parseDateArg parses an optional date argument. Empty means absent. Phrases
// like "tomorrow" or "in 3 days" resolve against the current day.
func parseDateArg(s string, cal *datemath.Calendar) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, cal.Location()); err == nil {
			return &t, nil
		}
	}
	t, err := cal.Resolve(s, timeNow())
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

// parseAttachmentArg reads "type,url[,title]". Type validity is left to the
// use case.
func parseAttachmentArg(s string) (task.AttachmentInput, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return task.AttachmentInput{}, errInvalidAttachment
	}
	in := task.AttachmentInput{Type: parts[0], URL: parts[1]}
	if len(parts) >= 3 {
		in.Title = parts[2]
	}
	return in, nil
}

// --- Request DTOs ---

type parseReq struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

func (r parseReq) toInput(cal *datemath.Calendar) (task.ParseInput, error) {
	ref, err := parseDateArg(r.Reference, cal)
	if err != nil {
		return task.ParseInput{}, err
	}
	return task.ParseInput{Text: r.Text, Reference: ref}, nil
}

// ---

type quickReq struct {
	Text      string `json:"text" binding:"required"`
	Reference string `json:"reference"`
}

func (r quickReq) toInput(cal *datemath.Calendar) (task.CreateFromTextInput, error) {
	ref, err := parseDateArg(r.Reference, cal)
	if err != nil {
		return task.CreateFromTextInput{}, err
	}
	return task.CreateFromTextInput{Text: r.Text, Reference: ref}, nil
}

// ---

type recurrenceReq struct {
	Frequency  string `json:"frequency" binding:"required"`
	Interval   int    `json:"interval" binding:"omitempty,min=1"`
	DaysOfWeek []int  `json:"days_of_week"`
	EndDate    string `json:"end_date"`
}

type createReq struct {
	Title            string         `json:"title" binding:"required,max=500"`
	Status           string         `json:"status"`
	EstimatedMinutes *int           `json:"estimated_minutes" binding:"omitempty,min=0"`
	DueDate          string         `json:"due_date"`
	StartDate        string         `json:"start_date"`
	ScheduledDate    string         `json:"scheduled_date"`
	CompletedAt      string         `json:"completed_at"`
	Priority         string         `json:"priority"`
	Tags             []string       `json:"tags"`
	Project          string         `json:"project"`
	ProjectID        string         `json:"project_id"`
	ParentID         string         `json:"parent_id"`
	Notes            string         `json:"notes"`
	Attachments      []string       `json:"attachments"` // type,url[,title]
	Recurrence       *recurrenceReq `json:"recurrence"`
}

func (r createReq) toInput(cal *datemath.Calendar) (task.CreateInput, error) {
	in := task.CreateInput{
		Title:            r.Title,
		Status:           r.Status,
		EstimatedMinutes: r.EstimatedMinutes,
		Priority:         r.Priority,
		Tags:             r.Tags,
		Project:          r.Project,
		ProjectID:        r.ProjectID,
		ParentID:         r.ParentID,
		Notes:            r.Notes,
	}

	var err error
	dates := []struct {
		raw string
		dst **time.Time
	}{
		{r.DueDate, &in.DueDate},
		{r.StartDate, &in.StartDate},
		{r.ScheduledDate, &in.ScheduledDate},
		{r.CompletedAt, &in.CompletedAt},
	}
	for _, d := range dates {
		if *d.dst, err = parseDateArg(d.raw, cal); err != nil {
			return task.CreateInput{}, err
		}
	}

	for _, raw := range r.Attachments {
		a, err := parseAttachmentArg(raw)
		if err != nil {
			return task.CreateInput{}, err
		}
		in.Attachments = append(in.Attachments, a)
	}

	if r.Recurrence != nil {
		end, err := parseDateArg(r.Recurrence.EndDate, cal)
		if err != nil {
			return task.CreateInput{}, err
		}
		in.Recurrence = &task.RecurrenceInput{
			Frequency:  r.Recurrence.Frequency,
			Interval:   r.Recurrence.Interval,
			DaysOfWeek: r.Recurrence.DaysOfWeek,
			EndDate:    end,
		}
	}

	return in, nil
}

// ---

type listReq struct {
	Status  string   `form:"status"`
	Tags    []string `form:"tag"`
	Project string   `form:"project"`
	Filter  string   `form:"filter"`
	Format  string   `form:"format"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:  r.Status,
		Tags:    r.Tags,
		Project: r.Project,
		Filter:  r.Filter,
	}
}

type exportReq struct {
	Filter string `form:"filter"`
	Format string `form:"format"`
}

type prioritizedReq struct {
	Filter      string `form:"filter"`
	WindowStart string `form:"window_start"`
	WindowEnd   string `form:"window_end"`
	Format      string `form:"format"`
}

func (r prioritizedReq) toInput(cal *datemath.Calendar) (task.PrioritizeInput, error) {
	start, err := parseDateArg(r.WindowStart, cal)
	if err != nil {
		return task.PrioritizeInput{}, err
	}
	end, err := parseDateArg(r.WindowEnd, cal)
	if err != nil {
		return task.PrioritizeInput{}, err
	}
	return task.PrioritizeInput{Filter: r.Filter, WindowStart: start, WindowEnd: end}, nil
}

type realityCheckReq struct {
	CapacityMinutes int `form:"capacity_minutes" binding:"omitempty,min=0"`
}

// --- Response DTOs ---

type attachmentResp struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

type recurrenceResp struct {
	Frequency  string             `json:"frequency"`
	Interval   int                `json:"interval"`
	DaysOfWeek []int              `json:"days_of_week,omitempty"`
	EndDate    *response.DateTime `json:"end_date,omitempty"`
}

func newRecurrenceResp(r *model.RecurrenceRule) *recurrenceResp {
	if r == nil {
		return nil
	}
	return &recurrenceResp{
		Frequency:  string(r.Frequency),
		Interval:   r.Interval,
		DaysOfWeek: r.DaysOfWeek,
		EndDate:    response.NewDateTime(r.EndDate),
	}
}

type taskResp struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Status           string             `json:"status"`
	EstimatedMinutes *int               `json:"estimated_minutes,omitempty"`
	DueDate          *response.DateTime `json:"due_date,omitempty"`
	StartDate        *response.DateTime `json:"start_date,omitempty"`
	ScheduledDate    *response.DateTime `json:"scheduled_date,omitempty"`
	CompletedAt      *response.DateTime `json:"completed_at,omitempty"`
	Priority         string             `json:"priority"`
	Tags             []string           `json:"tags"`
	Project          string             `json:"project,omitempty"`
	ProjectID        string             `json:"project_id,omitempty"`
	ParentID         string             `json:"parent_id,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Attachments      []attachmentResp   `json:"attachments"`
	Recurrence       *recurrenceResp    `json:"recurrence,omitempty"`
	DeferCount       int                `json:"defer_count"`
	IceboxReason     string             `json:"icebox_reason,omitempty"`
	CreatedAt        response.DateTime  `json:"created_at"`
	UpdatedAt        response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.TaskItem) taskResp {
	resp := taskResp{
		ID:               t.ID.String(),
		Title:            t.Title,
		Status:           string(t.Status),
		EstimatedMinutes: t.EstimatedMinutes,
		DueDate:          response.NewDateTime(t.DueDate),
		StartDate:        response.NewDateTime(t.StartDate),
		ScheduledDate:    response.NewDateTime(t.ScheduledDate),
		CompletedAt:      response.NewDateTime(t.CompletedAt),
		Priority:         string(t.Priority),
		Tags:             append([]string{}, t.Tags...),
		Project:          t.Project,
		Notes:            t.Notes,
		Attachments:      make([]attachmentResp, len(t.Attachments)),
		Recurrence:       newRecurrenceResp(t.RecurrenceRule),
		DeferCount:       t.DeferCount,
		IceboxReason:     t.IceboxReason,
		CreatedAt:        response.DateTime(t.CreatedAt),
		UpdatedAt:        response.DateTime(t.UpdatedAt),
	}
	if t.ProjectID != nil {
		resp.ProjectID = t.ProjectID.String()
	}
	if t.ParentID != nil {
		resp.ParentID = t.ParentID.String()
	}
	for i, a := range t.Attachments {
		resp.Attachments[i] = attachmentResp{ID: a.ID.String(), Type: string(a.Type), URL: a.URL, Title: a.Title}
	}
	return resp
}

type reminderResp struct {
	MinutesBefore *int               `json:"minutes_before,omitempty"`
	At            *response.DateTime `json:"at,omitempty"`
}

type parseResp struct {
	Title            string             `json:"title"`
	Status           string             `json:"status,omitempty"`
	EstimatedMinutes *int               `json:"estimated_minutes,omitempty"`
	DueDate          *response.DateTime `json:"due_date,omitempty"`
	ScheduledDate    *response.DateTime `json:"scheduled_date,omitempty"`
	Priority         string             `json:"priority,omitempty"`
	Tags             []string           `json:"tags"`
	Project          string             `json:"project,omitempty"`
	Recurrence       *recurrenceResp    `json:"recurrence,omitempty"`
	Reminder         *reminderResp      `json:"reminder,omitempty"`
}

func newParseResp(p nlp.ParsedTask) parseResp {
	resp := parseResp{
		Title:            p.Title,
		EstimatedMinutes: p.EstimatedMinutes,
		DueDate:          response.NewDateTime(p.DueDate),
		ScheduledDate:    response.NewDateTime(p.ScheduledDate),
		Tags:             append([]string{}, p.Tags...),
		Recurrence:       newRecurrenceResp(p.RecurrenceRule),
	}
	if p.Status != nil {
		resp.Status = string(*p.Status)
	}
	if p.Priority != nil {
		resp.Priority = string(*p.Priority)
	}
	if p.Project != nil {
		resp.Project = *p.Project
	}
	if p.Reminder != nil {
		resp.Reminder = &reminderResp{
			MinutesBefore: p.Reminder.MinutesBefore,
			At:            response.NewDateTime(p.Reminder.At),
		}
	}
	return resp
}

type createResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task), CalendarLink: out.CalendarLink}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Items []taskResp `json:"items"`
	Total int        `json:"total"`
}

func newListResp(tasks []model.TaskItem) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Items: items, Total: len(items)}
}

type realityCheckResp struct {
	TotalEstimatedMinutes int  `json:"total_estimated_minutes"`
	CapacityMinutes       int  `json:"capacity_minutes"`
	ExcessMinutes         int  `json:"excess_minutes"`
	Overloaded            bool `json:"overloaded"`
}

func newRealityCheckResp(r planner.RealityCheckResult) realityCheckResp {
	return realityCheckResp{
		TotalEstimatedMinutes: r.TotalEstimatedMinutes,
		CapacityMinutes:       r.CapacityMinutes,
		ExcessMinutes:         r.ExcessMinutes,
		Overloaded:            r.IsOverloaded(),
	}
}

type insightsResp struct {
	TotalCount              int      `json:"total_count"`
	CompletedCount          int      `json:"completed_count"`
	IceboxCount             int      `json:"icebox_count"`
	CompletionRate          float64  `json:"completion_rate"`
	AverageEstimatedMinutes *float64 `json:"average_estimated_minutes,omitempty"`
}

func newInsightsResp(s planner.InsightSummary) insightsResp {
	return insightsResp{
		TotalCount:              s.TotalCount,
		CompletedCount:          s.CompletedCount,
		IceboxCount:             s.IceboxCount,
		CompletionRate:          s.CompletionRate,
		AverageEstimatedMinutes: s.AverageEstimatedMinutes,
	}
}
