package postgre

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"daycraft/internal/model"
)

func TestEncodeDecodeTask(t *testing.T) {
	due := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	task := model.TaskItem{
		ID:       uuid.New(),
		Title:    "Read paper",
		Status:   model.StatusTodo,
		Priority: model.PriorityNormal,
		DueDate:  &due,
	}

	payload, err := encodeTask(task)
	if err != nil {
		t.Fatalf("encodeTask: %v", err)
	}
	if !strings.Contains(string(payload), `"tags":[]`) {
		t.Errorf("nil tags should encode as []: %s", payload)
	}

	got, err := decodeTask(payload)
	if err != nil {
		t.Fatalf("decodeTask: %v", err)
	}
	if got.ID != task.ID || got.Title != task.Title || !got.DueDate.Equal(due) {
		t.Errorf("decoded %+v", got)
	}
	if got.Attachments == nil {
		t.Error("Attachments should not be nil")
	}
}

func TestDecodeTask_Invalid(t *testing.T) {
	if _, err := decodeTask([]byte("{")); err == nil {
		t.Error("expected error")
	}
}
