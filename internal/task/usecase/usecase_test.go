package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"daycraft/internal/model"
	"daycraft/internal/nlp"
	"daycraft/internal/task"
	"daycraft/pkg/datemath"
)

// 2025-01-01 is a Wednesday.
var fixedNow = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

var sc = model.Scope{UserID: "u-1", Username: "tester"}

func newTestUseCase(r *mockRepo, events EventBooker) *implUseCase {
	uc := New(&mockLogger{}, r, nlp.NewParser(datemath.UTC()), events, Config{CapacityMinutes: 120})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestParse(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)
	ctx := context.Background()

	t.Run("defaults reference to now", func(t *testing.T) {
		out, err := uc.Parse(ctx, sc, task.ParseInput{Text: "Gym tomorrow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
		if out.Task.DueDate == nil || !out.Task.DueDate.Equal(want) {
			t.Errorf("DueDate = %v, want %v", out.Task.DueDate, want)
		}
	})

	t.Run("explicit reference", func(t *testing.T) {
		ref := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		out, _ := uc.Parse(ctx, sc, task.ParseInput{Text: "Gym today", Reference: &ref})
		if out.Task.DueDate == nil || !out.Task.DueDate.Equal(ref) {
			t.Errorf("DueDate = %v, want %v", out.Task.DueDate, ref)
		}
	})

	t.Run("empty text is an empty preview", func(t *testing.T) {
		out, err := uc.Parse(ctx, sc, task.ParseInput{Text: "   "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Title != "" || out.Task.Tags == nil {
			t.Errorf("unexpected preview: %+v", out.Task)
		}
	})
}

func TestCreateFromText(t *testing.T) {
	ctx := context.Background()

	t.Run("scheduled task books an event", func(t *testing.T) {
		r := &mockRepo{}
		booker := &mockBooker{}
		uc := newTestUseCase(r, booker)

		out, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: "Design review @work/okrs next monday 9-11"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Title != "Design review" || out.Task.Project != "work/okrs" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
		if out.CalendarLink != "https://calendar.example/evt-1" {
			t.Errorf("CalendarLink = %q", out.CalendarLink)
		}
		if len(r.tasks) != 1 {
			t.Fatalf("stored %d tasks, want 1", len(r.tasks))
		}
		if len(booker.requests) != 1 {
			t.Fatalf("booked %d events, want 1", len(booker.requests))
		}
		req := booker.requests[0]
		wantStart := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
		if !req.StartTime.Equal(wantStart) || !req.EndTime.Equal(wantStart.Add(2*time.Hour)) {
			t.Errorf("event %v - %v, want %v + 2h", req.StartTime, req.EndTime, wantStart)
		}
		if req.Timezone != "UTC" {
			t.Errorf("Timezone = %q", req.Timezone)
		}
	})

	t.Run("reminder is forwarded", func(t *testing.T) {
		booker := &mockBooker{}
		uc := newTestUseCase(&mockRepo{}, booker)

		if _, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: "Pay rent 9-10 remind 10m before"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(booker.requests) != 1 || booker.requests[0].ReminderMinutes == nil || *booker.requests[0].ReminderMinutes != 10 {
			t.Errorf("reminder not forwarded: %+v", booker.requests)
		}
	})

	t.Run("unscheduled task books nothing", func(t *testing.T) {
		booker := &mockBooker{}
		uc := newTestUseCase(&mockRepo{}, booker)

		out, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: "/done Ship release !!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(booker.requests) != 0 || out.CalendarLink != "" {
			t.Errorf("unexpected booking: %+v", booker.requests)
		}
		if out.Task.Status != model.StatusDone || out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(fixedNow) {
			t.Errorf("unexpected task: %+v", out.Task)
		}
	})

	t.Run("booking failure keeps the task", func(t *testing.T) {
		r := &mockRepo{}
		uc := newTestUseCase(r, &mockBooker{err: errors.New("quota")})

		out, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: "Workshop 9-11"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CalendarLink != "" || len(r.tasks) != 1 {
			t.Errorf("got link %q and %d tasks", out.CalendarLink, len(r.tasks))
		}
	})

	tests := []struct {
		name    string
		text    string
		repo    *mockRepo
		wantErr error
	}{
		{"empty", "  ", &mockRepo{}, task.ErrEmptyInput},
		{"only signals", "#research 45m", &mockRepo{}, task.ErrEmptyTitle},
		{"store failure", "Read paper", &mockRepo{fail: true}, errStore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.repo, nil)
			_, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: tt.text})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		r := &mockRepo{}
		uc := newTestUseCase(r, nil)

		out, err := uc.Create(ctx, sc, task.CreateInput{Title: "  Plan trip  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.Task
		if got.Title != "Plan trip" || got.Status != model.StatusTodo || got.Priority != model.PriorityNormal {
			t.Errorf("unexpected task: %+v", got)
		}
		if got.Tags == nil || got.Attachments == nil {
			t.Error("Tags and Attachments should be non-nil")
		}
		if !got.CreatedAt.Equal(fixedNow) || got.ID == uuid.Nil {
			t.Errorf("unexpected identity: %s %v", got.ID, got.CreatedAt)
		}
	})

	t.Run("full input", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, nil)
		projectID := uuid.New()

		out, err := uc.Create(ctx, sc, task.CreateInput{
			Title:       "Plan trip",
			Status:      "in-progress",
			Priority:    "HIGH",
			Tags:        []string{"travel"},
			ProjectID:   projectID.String(),
			Attachments: []task.AttachmentInput{{Type: "link", URL: "https://example.com", Title: "Guide"}},
			Recurrence:  &task.RecurrenceInput{Frequency: "weekly", DaysOfWeek: []int{2, 6}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.Task
		if got.Status != model.StatusInProgress || got.Priority != model.PriorityHigh {
			t.Errorf("status/priority = %s/%s", got.Status, got.Priority)
		}
		if got.ProjectID == nil || *got.ProjectID != projectID {
			t.Errorf("ProjectID = %v", got.ProjectID)
		}
		if len(got.Attachments) != 1 || got.Attachments[0].Type != model.AttachmentLink {
			t.Errorf("Attachments = %+v", got.Attachments)
		}
		if got.RecurrenceRule == nil || got.RecurrenceRule.Interval != 1 || len(got.RecurrenceRule.DaysOfWeek) != 2 {
			t.Errorf("RecurrenceRule = %+v", got.RecurrenceRule)
		}
	})

	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
	}{
		{"empty title", task.CreateInput{Title: " "}, task.ErrEmptyTitle},
		{"bad status", task.CreateInput{Title: "x", Status: "later"}, task.ErrInvalidStatus},
		{"bad priority", task.CreateInput{Title: "x", Priority: "urgent"}, task.ErrInvalidPriority},
		{"bad project id", task.CreateInput{Title: "x", ProjectID: "nope"}, task.ErrInvalidID},
		{"bad parent id", task.CreateInput{Title: "x", ParentID: "nope"}, task.ErrInvalidID},
		{"bad attachment type", task.CreateInput{Title: "x", Attachments: []task.AttachmentInput{{Type: "video", URL: "u"}}}, task.ErrInvalidAttachment},
		{"attachment without url", task.CreateInput{Title: "x", Attachments: []task.AttachmentInput{{Type: "file"}}}, task.ErrInvalidAttachment},
		{"bad frequency", task.CreateInput{Title: "x", Recurrence: &task.RecurrenceInput{Frequency: "hourly"}}, task.ErrInvalidFrequency},
		{"bad weekday", task.CreateInput{Title: "x", Recurrence: &task.RecurrenceInput{Frequency: "weekly", DaysOfWeek: []int{0}}}, task.ErrInvalidWeekday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRepo{}
			uc := newTestUseCase(r, nil)
			if _, err := uc.Create(ctx, sc, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if len(r.tasks) != 0 {
				t.Error("invalid input must not be stored")
			}
		})
	}
}

func TestDetailAndDefer(t *testing.T) {
	ctx := context.Background()
	open := model.TaskItem{ID: uuid.New(), Title: "open", Status: model.StatusTodo}
	done := model.TaskItem{ID: uuid.New(), Title: "done", Status: model.StatusDone}
	r := &mockRepo{tasks: []model.TaskItem{open, done}}
	uc := newTestUseCase(r, nil)

	t.Run("detail", func(t *testing.T) {
		out, err := uc.Detail(ctx, sc, open.ID.String())
		if err != nil || out.Task.Title != "open" {
			t.Errorf("Detail = %+v, %v", out, err)
		}
	})

	t.Run("detail errors", func(t *testing.T) {
		if _, err := uc.Detail(ctx, sc, "not-a-uuid"); !errors.Is(err, task.ErrInvalidID) {
			t.Errorf("err = %v, want ErrInvalidID", err)
		}
		if _, err := uc.Detail(ctx, sc, uuid.NewString()); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("err = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("defer increments", func(t *testing.T) {
		for i := 1; i <= 2; i++ {
			out, err := uc.Defer(ctx, sc, open.ID.String())
			if err != nil {
				t.Fatalf("Defer: %v", err)
			}
			if out.Task.DeferCount != i {
				t.Errorf("DeferCount = %d, want %d", out.Task.DeferCount, i)
			}
		}
		if r.tasks[0].DeferCount != 2 || !r.tasks[0].UpdatedAt.Equal(fixedNow) {
			t.Errorf("stored task = %+v", r.tasks[0])
		}
	})

	t.Run("defer closed task", func(t *testing.T) {
		if _, err := uc.Defer(ctx, sc, done.ID.String()); !errors.Is(err, task.ErrTaskNotOpen) {
			t.Errorf("err = %v, want ErrTaskNotOpen", err)
		}
	})
}

func due(day int) *time.Time {
	t := time.Date(2025, 1, day, 12, 0, 0, 0, time.UTC)
	return &t
}

func minutes(v int) *int { return &v }

func seeded() *mockRepo {
	old := fixedNow.AddDate(0, 0, -10)
	return &mockRepo{tasks: []model.TaskItem{
		{ID: uuid.New(), Title: "today work", Status: model.StatusTodo, Priority: model.PriorityNormal, DueDate: due(1), Tags: []string{"work"}, EstimatedMinutes: minutes(90), CreatedAt: fixedNow},
		{ID: uuid.New(), Title: "critical", Status: model.StatusInProgress, Priority: model.PriorityCritical, EstimatedMinutes: minutes(60), CreatedAt: fixedNow},
		{ID: uuid.New(), Title: "finished", Status: model.StatusDone, Priority: model.PriorityCritical, DueDate: due(1), EstimatedMinutes: minutes(30), CreatedAt: fixedNow},
		{ID: uuid.New(), Title: "dusty", Status: model.StatusTodo, Priority: model.PriorityLow, DeferCount: 5, CreatedAt: old},
		{ID: uuid.New(), Title: "parked", Status: model.StatusIcebox, Priority: model.PriorityLow, CreatedAt: fixedNow},
	}}
}

func TestListAndExport(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(seeded(), nil)

	out, err := uc.List(ctx, sc, task.ListInput{Status: "todo"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Errorf("todo tasks = %d, want 2", len(out.Tasks))
	}

	out, _ = uc.List(ctx, sc, task.ListInput{Tags: []string{"work"}, Filter: "+today"})
	if len(out.Tasks) != 1 || out.Tasks[0].Title != "today work" {
		t.Errorf("tag + today = %+v", out.Tasks)
	}

	if _, err := uc.List(ctx, sc, task.ListInput{Status: "someday"}); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}

	out, _ = uc.Export(ctx, sc, task.ExportInput{Filter: "/icebox"})
	if len(out.Tasks) != 1 || out.Tasks[0].Title != "parked" {
		t.Errorf("Export = %+v", out.Tasks)
	}

	failing := newTestUseCase(&mockRepo{fail: true}, nil)
	if _, err := failing.Export(ctx, sc, task.ExportInput{}); !errors.Is(err, errStore) {
		t.Errorf("err = %v, want errStore", err)
	}
}

func TestPrioritize(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(seeded(), nil)

	out, err := uc.Prioritize(ctx, sc, task.PrioritizeInput{})
	if err != nil {
		t.Fatalf("Prioritize: %v", err)
	}
	var got []string
	for _, item := range out.Tasks {
		got = append(got, item.Title)
	}
	want := []string{"critical", "today work", "dusty"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}

	start := fixedNow
	end := fixedNow.Add(-time.Hour)
	if _, err := uc.Prioritize(ctx, sc, task.PrioritizeInput{WindowStart: &start, WindowEnd: &end}); !errors.Is(err, task.ErrInvalidWindow) {
		t.Errorf("err = %v, want ErrInvalidWindow", err)
	}
	if _, err := uc.Prioritize(ctx, sc, task.PrioritizeInput{WindowStart: &start}); !errors.Is(err, task.ErrInvalidWindow) {
		t.Errorf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestPlannerViews(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(seeded(), nil)

	stale, err := uc.Stale(ctx, sc)
	if err != nil || len(stale.Tasks) != 1 || stale.Tasks[0].Title != "dusty" {
		t.Errorf("Stale = %+v, %v", stale.Tasks, err)
	}

	result, err := uc.RealityCheck(ctx, sc, task.RealityCheckInput{})
	if err != nil {
		t.Fatalf("RealityCheck: %v", err)
	}
	if result.TotalEstimatedMinutes != 150 || result.CapacityMinutes != 120 || result.ExcessMinutes != 30 {
		t.Errorf("RealityCheck = %+v", result)
	}

	result, _ = uc.RealityCheck(ctx, sc, task.RealityCheckInput{CapacityMinutes: 480})
	if result.IsOverloaded() {
		t.Errorf("RealityCheck(480) = %+v", result)
	}

	summary, err := uc.Insights(ctx, sc)
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if summary.TotalCount != 5 || summary.CompletedCount != 1 || summary.IceboxCount != 1 {
		t.Errorf("Insights = %+v", summary)
	}
}
