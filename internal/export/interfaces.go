package export

import (
	"github.com/ytget/skeletonne/internal/codegen"
	"github.com/ytget/skeletonne/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	SetOutputDirectory(dir string)
	OutputDirectory() string
	Code(elements []model.Element, opts codegen.Options) (string, error)
	Export(elements []model.Element, opts codegen.Options) (*model.ExportTask, error)
	GetTask(taskID string) (*model.ExportTask, bool)
	GetAllTasks() []*model.ExportTask
}

var _ Exporter = (*Service)(nil)
