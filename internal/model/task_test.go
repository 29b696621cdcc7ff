package model

import (
	"testing"
	"time"
)

func TestTaskStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, true},
		{TaskStatusRunning, true},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusRunning, false},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestExportTask_GetDisplayName(t *testing.T) {
	tests := []struct {
		id       string
		path     string
		expected string
	}{
		{"export-1", "/tmp/out/SkeletonLoader.tsx", "SkeletonLoader"},
		{"export-2", "", "export-2"},
		{"export-3", "relative/card.html", "card"},
		{"export-4", "/tmp/.hidden", ".hidden"},
	}

	for _, test := range tests {
		task := &ExportTask{ID: test.id, OutputPath: test.path}
		result := task.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with path='%s' = '%s', expected '%s'", test.path, result, test.expected)
		}
	}
}

func TestExportTask_Duration(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	task := &ExportTask{StartedAt: start}
	if task.Duration() != 0 {
		t.Errorf("Expected zero duration for unfinished task, got %v", task.Duration())
	}

	task.FinishedAt = start.Add(1500 * time.Millisecond)
	if task.Duration() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s duration, got %v", task.Duration())
	}
}
