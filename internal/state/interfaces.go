package state

import (
	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
)

// Container defines the interface the playground and scripts mutate layouts through.
type Container interface {
	SetUpdateCallback(func([]model.Element))
	Snapshot() []model.Element
	Len() int
	Get(id string) (model.Element, bool)
	At(position int) (model.Element, bool)
	Dispatch(op layout.Operation) []model.Element
	Add(orientation model.Orientation) []model.Element
	Remove(id string) []model.Element
	Update(id string, patch layout.Patch) []model.Element
	Reset(elements []model.Element) []model.Element

	// SetDefaults changes the template used for newly added elements
	SetDefaults(defaults model.Element)
}

var _ Container = (*Store)(nil)
