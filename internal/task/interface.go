package task

import (
	"context"

	"daycraft/internal/model"
	"daycraft/internal/planner"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse previews what free text would become, without storing anything.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// Create stores a task built from explicit fields.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// CreateFromText parses free text, stores the result and books a calendar
	// event when the text carried a time range.
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (CreateOutput, error)

	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ListOutput, error)

	// Defer pushes a task back, counting towards stale detection.
	Defer(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	Prioritize(ctx context.Context, sc model.Scope, input PrioritizeInput) (ListOutput, error)
	Stale(ctx context.Context, sc model.Scope) (ListOutput, error)
	RealityCheck(ctx context.Context, sc model.Scope, input RealityCheckInput) (planner.RealityCheckResult, error)
	Insights(ctx context.Context, sc model.Scope) (planner.InsightSummary, error)
}
