package http

import (
	"context"

	"daycraft/internal/model"
	"daycraft/internal/planner"
	"daycraft/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockUseCase returns canned outputs and records the last inputs.
type mockUseCase struct {
	err error

	parseOut  task.ParseOutput
	createOut task.CreateOutput
	detailOut task.DetailOutput
	listOut   task.ListOutput
	reality   planner.RealityCheckResult
	insights  planner.InsightSummary

	lastScope      model.Scope
	lastParse      task.ParseInput
	lastCreate     task.CreateInput
	lastQuick      task.CreateFromTextInput
	lastList       task.ListInput
	lastExport     task.ExportInput
	lastPrioritize task.PrioritizeInput
	lastReality    task.RealityCheckInput
	lastID         string
}

func (m *mockUseCase) Parse(ctx context.Context, sc model.Scope, input task.ParseInput) (task.ParseOutput, error) {
	m.lastScope, m.lastParse = sc, input
	return m.parseOut, m.err
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	m.lastScope, m.lastCreate = sc, input
	return m.createOut, m.err
}

func (m *mockUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateFromTextInput) (task.CreateOutput, error) {
	m.lastScope, m.lastQuick = sc, input
	return m.createOut, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	m.lastScope, m.lastID = sc, id
	return m.detailOut, m.err
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.lastScope, m.lastList = sc, input
	return m.listOut, m.err
}

func (m *mockUseCase) Export(ctx context.Context, sc model.Scope, input task.ExportInput) (task.ListOutput, error) {
	m.lastScope, m.lastExport = sc, input
	return m.listOut, m.err
}

func (m *mockUseCase) Defer(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	m.lastScope, m.lastID = sc, id
	return m.detailOut, m.err
}

func (m *mockUseCase) Prioritize(ctx context.Context, sc model.Scope, input task.PrioritizeInput) (task.ListOutput, error) {
	m.lastScope, m.lastPrioritize = sc, input
	return m.listOut, m.err
}

func (m *mockUseCase) Stale(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	m.lastScope = sc
	return m.listOut, m.err
}

func (m *mockUseCase) RealityCheck(ctx context.Context, sc model.Scope, input task.RealityCheckInput) (planner.RealityCheckResult, error) {
	m.lastScope, m.lastReality = sc, input
	return m.reality, m.err
}

func (m *mockUseCase) Insights(ctx context.Context, sc model.Scope) (planner.InsightSummary, error) {
	m.lastScope = sc
	return m.insights, m.err
}
