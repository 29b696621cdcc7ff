package model

import (
	"path/filepath"
	"strings"
	"time"
)

// TaskStatus represents the status of an export task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but nothing was written yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRunning means the export file is being written
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusCompleted means the file was written successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the export failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusRunning
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// ExportTask represents one write of generated code to disk
type ExportTask struct {
	ID         string
	Format     string
	OutputPath string
	Status     TaskStatus
	Bytes      int
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayName returns the exported file name without directory and extension
func (et *ExportTask) GetDisplayName() string {
	if et.OutputPath == "" {
		return et.ID
	}
	name := filepath.Base(et.OutputPath)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// Duration returns how long the export took, or zero if it has not finished
func (et *ExportTask) Duration() time.Duration {
	if et.FinishedAt.IsZero() || et.StartedAt.IsZero() {
		return 0
	}
	return et.FinishedAt.Sub(et.StartedAt)
}
