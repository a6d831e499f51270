package usecase

import (
	"context"
	"time"

	"daycraft/internal/nlp"
	"daycraft/internal/planner"
	"daycraft/internal/task"
	"daycraft/internal/task/repository"
	"daycraft/pkg/datemath"
	"daycraft/pkg/gcalendar"
	pkgLog "daycraft/pkg/log"
)

// EventBooker books calendar events for scheduled tasks. *gcalendar.Client
// satisfies it.
type EventBooker interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error)
}

// Config tunes the planner collaborators and calendar sync.
type Config struct {
	CapacityMinutes int
	StaleDays       int
	DeferThreshold  int
	DeepWorkMorning bool
	CalendarID      string
}

var _ task.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	parser   *nlp.Parser
	calendar *datemath.Calendar
	events   EventBooker // nil disables calendar sync
	cfg      Config
	now      func() time.Time

	prioritizer planner.Prioritizer
	stale       planner.StaleDetector
	reality     planner.RealityCheck
	insights    planner.InsightEngine
}

// New creates a new task UseCase instance. events may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *nlp.Parser,
	events EventBooker,
	cfg Config,
) *implUseCase {
	if cfg.CapacityMinutes <= 0 {
		cfg.CapacityMinutes = planner.DefaultCapacityMinutes
	}
	if cfg.StaleDays <= 0 {
		cfg.StaleDays = planner.DefaultStaleDays
	}
	if cfg.DeferThreshold <= 0 {
		cfg.DeferThreshold = planner.DefaultDeferThreshold
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		parser:   parser,
		calendar: parser.Calendar(),
		events:   events,
		cfg:      cfg,
		now:      time.Now,
		stale:    planner.StaleDetector{StaleDays: cfg.StaleDays, DeferThreshold: cfg.DeferThreshold},
	}
}
