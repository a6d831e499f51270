package postgre

import (
	"encoding/json"
	"fmt"

	"daycraft/internal/model"
)

func encodeTask(t model.TaskItem) ([]byte, error) {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Attachments == nil {
		t.Attachments = []model.Attachment{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal task %s: %w", t.ID, err)
	}
	return data, nil
}

func decodeTask(payload []byte) (model.TaskItem, error) {
	var t model.TaskItem
	if err := json.Unmarshal(payload, &t); err != nil {
		return model.TaskItem{}, fmt.Errorf("unmarshal task: %w", err)
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Attachments == nil {
		t.Attachments = []model.Attachment{}
	}
	return t, nil
}
