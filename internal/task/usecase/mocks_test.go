package usecase

import (
	"context"
	"errors"
	"sync"

	"daycraft/internal/model"
	repo "daycraft/internal/task/repository"
	"daycraft/pkg/gcalendar"
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

var errStore = errors.New("store down")

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mu    sync.Mutex
	tasks []model.TaskItem
	fail  bool
}

func (m *mockRepo) ListTasks(ctx context.Context) ([]model.TaskItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStore
	}
	return append([]model.TaskItem{}, m.tasks...), nil
}

func (m *mockRepo) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.TaskItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.TaskItem{}, errStore
	}
	for _, t := range m.tasks {
		if t.ID == opt.ID {
			return t, nil
		}
	}
	return model.TaskItem{}, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.TaskItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.TaskItem{}, errStore
	}
	m.tasks = append(m.tasks, opt.Task)
	return opt.Task, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.TaskItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.TaskItem{}, errStore
	}
	for i := range m.tasks {
		if m.tasks[i].ID == opt.Task.ID {
			m.tasks[i] = opt.Task
			return opt.Task, nil
		}
	}
	return model.TaskItem{}, nil
}

func (m *mockRepo) ReplaceAll(ctx context.Context, tasks []model.TaskItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append([]model.TaskItem{}, tasks...)
	return nil
}

type mockBooker struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockBooker) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return gcalendar.Event{}, m.err
	}
	return gcalendar.Event{ID: "evt-1", HTMLLink: "https://calendar.example/evt-1"}, nil
}
