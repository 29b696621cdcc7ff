package state

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
)

// Store serializes layout operations over a single element list
type Store struct {
	elements []model.Element
	policy   *layout.Policy
	mu       sync.RWMutex
	logger   *zap.Logger
	onUpdate func([]model.Element) // callback for UI updates
}

// NewStore creates a store seeded with initial. Rows in initial are
// redistributed so every row starts with equal shares. A nil policy uses
// uuid ids; a nil logger discards output.
func NewStore(policy *layout.Policy, initial []model.Element, logger *zap.Logger) *Store {
	if policy == nil {
		policy = layout.NewPolicy(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		elements: layout.Redistribute(initial),
		policy:   policy,
		logger:   logger,
	}
}

// SetUpdateCallback sets the callback invoked with a copy of the list after
// every mutation
func (s *Store) SetUpdateCallback(callback func([]model.Element)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetDefaults changes the template used for newly added elements
func (s *Store) SetDefaults(defaults model.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy.Defaults = defaults
}

// Snapshot returns a copy of the current list
func (s *Store) Snapshot() []model.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Clone(s.elements)
}

// Len returns the number of elements
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// Get returns the element with id
func (s *Store) Get(id string) (model.Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := model.IndexOf(s.elements, id)
	if idx < 0 {
		return model.Element{}, false
	}
	return s.elements[idx], true
}

// At returns the element at a 1-based position, the numbering the
// playground shows as "Skeleton N"
func (s *Store) At(position int) (model.Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if position < 1 || position > len(s.elements) {
		return model.Element{}, false
	}
	return s.elements[position-1], true
}

// Dispatch applies op and returns a copy of the resulting list
func (s *Store) Dispatch(op layout.Operation) []model.Element {
	s.mu.Lock()
	before := len(s.elements)
	s.elements = s.policy.Apply(s.elements, op)
	after := len(s.elements)
	snapshot := model.Clone(s.elements)
	callback := s.onUpdate
	s.mu.Unlock()

	s.logger.Debug("Applied layout operation",
		zap.String("op", op.Kind.String()),
		zap.String("id", op.ID),
		zap.Int("before", before),
		zap.Int("after", after),
	)

	if callback != nil {
		callback(model.Clone(snapshot))
	}
	return snapshot
}

// Add appends a new element
func (s *Store) Add(orientation model.Orientation) []model.Element {
	return s.Dispatch(layout.Add(orientation))
}

// Remove deletes the element with id
func (s *Store) Remove(id string) []model.Element {
	return s.Dispatch(layout.Remove(id))
}

// Update merges patch into the element with id
func (s *Store) Update(id string, patch layout.Patch) []model.Element {
	return s.Dispatch(layout.Update(id, patch))
}

// Reset replaces the list, redistributing its rows
func (s *Store) Reset(elements []model.Element) []model.Element {
	s.mu.Lock()
	s.elements = layout.Redistribute(elements)
	snapshot := model.Clone(s.elements)
	callback := s.onUpdate
	s.mu.Unlock()

	s.logger.Info("Layout reset", zap.Int("elements", len(snapshot)))

	if callback != nil {
		callback(model.Clone(snapshot))
	}
	return snapshot
}
