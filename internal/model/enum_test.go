package model_test

import (
	"errors"
	"testing"

	"daycraft/internal/model"
)

func TestEnumRawValues(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{string(model.StatusTodo), "todo"},
		{string(model.StatusInProgress), "inProgress"},
		{string(model.StatusDone), "done"},
		{string(model.StatusIcebox), "icebox"},
		{string(model.StatusDropped), "dropped"},
		{string(model.PriorityLow), "low"},
		{string(model.PriorityNormal), "normal"},
		{string(model.PriorityHigh), "high"},
		{string(model.PriorityCritical), "critical"},
		{string(model.FrequencyDaily), "daily"},
		{string(model.FrequencyWeekly), "weekly"},
		{string(model.FrequencyMonthly), "monthly"},
		{string(model.FrequencyYearly), "yearly"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("raw value = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    model.TaskStatus
		wantErr bool
	}{
		{in: "todo", want: model.StatusTodo},
		{in: "InProgress", want: model.StatusInProgress},
		{in: "in-progress", want: model.StatusInProgress},
		{in: " done ", want: model.StatusDone},
		{in: "dropped", want: model.StatusDropped},
		{in: "archived", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := model.ParseTaskStatus(tt.in)
			if tt.wantErr {
				if !errors.Is(err, model.ErrUnknownStatus) {
					t.Fatalf("expected ErrUnknownStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseTaskStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTaskPriorityAndWeight(t *testing.T) {
	p, err := model.ParseTaskPriority("HIGH")
	if err != nil || p != model.PriorityHigh {
		t.Fatalf("ParseTaskPriority(HIGH) = %q, %v", p, err)
	}
	if _, err := model.ParseTaskPriority("urgent"); !errors.Is(err, model.ErrUnknownPriority) {
		t.Errorf("expected ErrUnknownPriority, got %v", err)
	}
	if model.PriorityCritical.Weight() <= model.PriorityHigh.Weight() ||
		model.PriorityHigh.Weight() <= model.PriorityNormal.Weight() ||
		model.PriorityNormal.Weight() <= model.PriorityLow.Weight() {
		t.Errorf("priority weights are not strictly ordered")
	}
}

func TestParseRecurrenceFrequency(t *testing.T) {
	if f, err := model.ParseRecurrenceFrequency("Monthly"); err != nil || f != model.FrequencyMonthly {
		t.Fatalf("ParseRecurrenceFrequency(Monthly) = %q, %v", f, err)
	}
	if _, err := model.ParseRecurrenceFrequency("hourly"); !errors.Is(err, model.ErrUnknownFrequency) {
		t.Errorf("expected ErrUnknownFrequency, got %v", err)
	}
}

func TestTaskItemIsOpen(t *testing.T) {
	for status, want := range map[model.TaskStatus]bool{
		model.StatusTodo:       true,
		model.StatusInProgress: true,
		model.StatusDone:       false,
		model.StatusIcebox:     false,
		model.StatusDropped:    false,
	} {
		if got := (model.TaskItem{Status: status}).IsOpen(); got != want {
			t.Errorf("IsOpen(%s) = %v, want %v", status, got, want)
		}
	}
}
