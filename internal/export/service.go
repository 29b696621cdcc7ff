package export

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/skeletonne/internal/codegen"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/platform"
)

// TaskIDPrefix prefixes every export task id
const TaskIDPrefix = "export-"

// ErrEmptyLayout is returned when there is nothing to export
var ErrEmptyLayout = errors.New("layout has no elements")

// Service handles export operations
type Service struct {
	tasks      map[string]*model.ExportTask
	tasksMutex sync.RWMutex
	outputDir  string
	logger     *zap.Logger
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service writing into outputDir
func NewService(outputDir string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		tasks:     make(map[string]*model.ExportTask),
		outputDir: outputDir,
		logger:    logger,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetOutputDirectory sets the directory exported files are written to
func (s *Service) SetOutputDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.outputDir = dir
}

// OutputDirectory returns the directory exported files are written to
func (s *Service) OutputDirectory() string {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.outputDir
}

// Code returns the generated code for elements
func (s *Service) Code(elements []model.Element, opts codegen.Options) (string, error) {
	if len(elements) == 0 {
		return "", ErrEmptyLayout
	}
	return codegen.Generate(elements, opts), nil
}

// Export generates code for elements and writes it to
// <output dir>/<ComponentName><extension>. The returned task is finished:
// completed on success, errored otherwise.
func (s *Service) Export(elements []model.Element, opts codegen.Options) (*model.ExportTask, error) {
	code, err := s.Code(elements, opts)
	if err != nil {
		return nil, err
	}
	opts = opts.Normalized()

	task := &model.ExportTask{
		ID:        generateTaskID(),
		Format:    opts.Format.String(),
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	dir := s.outputDir
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	s.setStatus(task, model.TaskStatusRunning)

	fileName := platform.ExportFileName(opts.ComponentName, opts.Format.Extension())
	path, err := platform.WriteExportFile(dir, fileName, []byte(code))
	if err != nil {
		s.logger.Error("Export failed",
			zap.String("task", task.ID),
			zap.String("dir", dir),
			zap.Error(err),
		)
		s.setTaskError(task, err)
		return task, fmt.Errorf("failed to export %s: %w", fileName, err)
	}

	s.tasksMutex.Lock()
	task.OutputPath = path
	task.Bytes = len(code)
	task.Status = model.TaskStatusCompleted
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.logger.Info("Exported skeleton",
		zap.String("task", task.ID),
		zap.String("path", path),
		zap.String("format", task.Format),
		zap.Int("elements", len(elements)),
		zap.Int("bytes", task.Bytes),
	)
	s.notifyUpdate(task)

	return task, nil
}

// GetTask returns an export task by ID
func (s *Service) GetTask(taskID string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// GetAllTasks returns all tasks, oldest first
func (s *Service) GetAllTasks() []*model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ExportTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].StartedAt.Before(tasks[j].StartedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}

// setStatus moves a task to status
func (s *Service) setStatus(task *model.ExportTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.ExportTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// generateTaskID generates a unique, time-ordered task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return TaskIDPrefix + uuid.NewString()
	}
	return TaskIDPrefix + id.String()
}
