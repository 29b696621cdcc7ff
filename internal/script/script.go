package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/skeletonne/internal/codegen"
	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/state"
)

// Sentinel errors
var (
	ErrUnknownStep      = errors.New("unknown step")
	ErrTargetOutOfRange = errors.New("target out of range")
	ErrDuplicateID      = errors.New("duplicate element id")
)

// Start values
const (
	StartDefault = "default"
	StartEmpty   = "empty"
)

// Script is a parsed layout script
type Script struct {
	Start     string          `yaml:"start"`
	Component string          `yaml:"component"`
	Format    string          `yaml:"format"`
	Elements  []model.Element `yaml:"elements"`
	Steps     []Step          `yaml:"steps"`
}

// Target addresses an element by 1-based position or by id
type Target struct {
	Position int
	ID       string
}

// String returns the string representation of Target
func (t Target) String() string {
	if t.ID != "" {
		return t.ID
	}
	return strconv.Itoa(t.Position)
}

// UnmarshalYAML reads a scalar: integers are positions, anything else an id
func (t *Target) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: target must be a position or an id", value.Line)
	}
	raw := strings.TrimSpace(value.Value)
	if raw == "" {
		return fmt.Errorf("line %d: empty target", value.Line)
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*t = Target{Position: n}
		return nil
	}
	*t = Target{ID: raw}
	return nil
}

// UpdateFields are the fields of an update step. Omitted fields are untouched.
type UpdateFields struct {
	Target      Target  `yaml:"target"`
	Width       *string `yaml:"width"`
	Height      *string `yaml:"height"`
	Radius      *string `yaml:"radius"`
	Color       *string `yaml:"color"`
	Orientation *string `yaml:"orientation"`
}

// Step is one add, remove or update instruction
type Step struct {
	Kind        layout.OpKind
	Orientation model.Orientation
	Target      Target
	Update      UpdateFields
}

// UnmarshalYAML reads a single-key mapping naming the step kind
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: a step must be a mapping with exactly one key", value.Line)
	}
	key, body := value.Content[0].Value, value.Content[1]

	switch layout.OpKind(key) {
	case layout.OpAdd:
		var raw string
		if err := body.Decode(&raw); err != nil {
			return err
		}
		if raw == "" {
			raw = string(model.OrientationVertical)
		}
		o, err := model.ParseOrientation(raw)
		if err != nil {
			return fmt.Errorf("line %d: %w", body.Line, err)
		}
		*s = Step{Kind: layout.OpAdd, Orientation: o}
	case layout.OpRemove:
		var target Target
		if err := body.Decode(&target); err != nil {
			return err
		}
		*s = Step{Kind: layout.OpRemove, Target: target}
	case layout.OpUpdate:
		if err := checkUpdateKeys(body); err != nil {
			return err
		}
		var fields UpdateFields
		if err := body.Decode(&fields); err != nil {
			return err
		}
		*s = Step{Kind: layout.OpUpdate, Target: fields.Target, Update: fields}
	default:
		return fmt.Errorf("line %d: %w %q", value.Line, ErrUnknownStep, key)
	}
	return nil
}

var updateKeys = map[string]bool{
	"target": true, "width": true, "height": true,
	"radius": true, "color": true, "orientation": true,
}

func checkUpdateKeys(body *yaml.Node) error {
	if body.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: update step must be a mapping", body.Line)
	}
	hasTarget := false
	for i := 0; i < len(body.Content); i += 2 {
		key := body.Content[i]
		if !updateKeys[key.Value] {
			return fmt.Errorf("line %d: unknown update field %q", key.Line, key.Value)
		}
		hasTarget = hasTarget || key.Value == "target"
	}
	if !hasTarget {
		return fmt.Errorf("line %d: update step without target", body.Line)
	}
	return nil
}

// Parse decodes a script from YAML
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and decodes a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Validate checks the starting list and top-level values
func (s *Script) Validate() error {
	switch s.Start {
	case "", StartDefault, StartEmpty:
	default:
		return fmt.Errorf("invalid start %q: expected %s or %s", s.Start, StartDefault, StartEmpty)
	}
	if s.Format != "" {
		if _, err := codegen.ParseFormat(s.Format); err != nil {
			return err
		}
	}
	if s.Component != "" && !codegen.ValidComponentName(s.Component) {
		return fmt.Errorf("invalid component name %q", s.Component)
	}
	seen := make(map[string]int, len(s.Elements))
	for i, e := range s.Elements {
		if e.Orientation != "" && !e.Orientation.IsValid() {
			return fmt.Errorf("element %d: unknown orientation %q", i+1, e.Orientation)
		}
		if e.BorderRadius != "" && !e.BorderRadius.IsValid() {
			return fmt.Errorf("element %d: unknown border radius %q", i+1, e.BorderRadius)
		}
		if err := model.ValidateColor(e.Color); err != nil {
			return fmt.Errorf("element %d: %w", i+1, err)
		}
		if e.ID == "" {
			continue
		}
		if first, ok := seen[e.ID]; ok {
			return fmt.Errorf("element %d: %w %q (first used by element %d)", i+1, ErrDuplicateID, e.ID, first)
		}
		seen[e.ID] = i + 1
	}
	for i, step := range s.Steps {
		if step.Kind != layout.OpUpdate || step.Update.Color == nil {
			continue
		}
		if err := model.ValidateColor(*step.Update.Color); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Initial returns the list the steps start from. Explicit elements win over
// start; missing ids are minted from ids, skipping ids the script already
// names, and missing fields get defaults.
func (s *Script) Initial(ids layout.IDGenerator) []model.Element {
	if ids == nil {
		ids = layout.UUIDGenerator{}
	}

	if len(s.Elements) > 0 {
		taken := make(map[string]bool, len(s.Elements))
		for _, e := range s.Elements {
			if e.ID != "" {
				taken[e.ID] = true
			}
		}

		out := make([]model.Element, len(s.Elements))
		for i, e := range s.Elements {
			if e.ID == "" {
				e.ID = ids.NewElementID()
				for taken[e.ID] {
					e.ID = ids.NewElementID()
				}
				taken[e.ID] = true
			}
			if e.Orientation == "" {
				e.Orientation = model.OrientationVertical
			}
			if e.Width == "" {
				e.Width = model.DefaultWidth
			}
			if e.Height == "" {
				e.Height = model.DefaultHeight
			}
			if e.BorderRadius == "" {
				e.BorderRadius = model.DefaultRadius
			}
			if !e.IsHorizontal() {
				e.RowID = ""
			}
			out[i] = e
		}
		return out
	}

	if s.Start == StartEmpty {
		return nil
	}
	return model.DefaultElements(ids.NewElementID(), ids.NewElementID(), ids.NewElementID())
}

// Options applies the script's component and format over base
func (s *Script) Options(base codegen.Options) codegen.Options {
	if s.Component != "" {
		base.ComponentName = s.Component
	}
	if f, err := codegen.ParseFormat(s.Format); err == nil {
		base.Format = f
	}
	return base
}

// Run replays the steps through store and returns the final list. It stops at
// the first step that cannot be resolved.
func (s *Script) Run(store state.Container) ([]model.Element, error) {
	for i, step := range s.Steps {
		op, err := step.Resolve(store)
		if err != nil {
			return store.Snapshot(), fmt.Errorf("step %d: %w", i+1, err)
		}
		store.Dispatch(op)
	}
	return store.Snapshot(), nil
}

// Resolve turns the step into a layout operation against the current list
func (s Step) Resolve(store state.Container) (layout.Operation, error) {
	switch s.Kind {
	case layout.OpAdd:
		return layout.Add(s.Orientation), nil
	case layout.OpRemove:
		id, err := resolveTarget(store, s.Target)
		if err != nil {
			return layout.Operation{}, err
		}
		return layout.Remove(id), nil
	case layout.OpUpdate:
		id, err := resolveTarget(store, s.Target)
		if err != nil {
			return layout.Operation{}, err
		}
		patch, err := s.Update.Patch()
		if err != nil {
			return layout.Operation{}, err
		}
		return layout.Update(id, patch), nil
	default:
		return layout.Operation{}, fmt.Errorf("%w %q", ErrUnknownStep, s.Kind)
	}
}

// Patch converts the fields into a layout patch
func (u UpdateFields) Patch() (layout.Patch, error) {
	patch := layout.Patch{
		Width:  u.Width,
		Height: u.Height,
		Color:  u.Color,
	}
	if u.Radius != nil {
		r, err := model.ParseRadius(*u.Radius)
		if err != nil {
			return layout.Patch{}, err
		}
		patch.BorderRadius = &r
	}
	if u.Orientation != nil {
		o, err := model.ParseOrientation(*u.Orientation)
		if err != nil {
			return layout.Patch{}, err
		}
		patch.Orientation = &o
	}
	return patch, nil
}

func resolveTarget(store state.Container, t Target) (string, error) {
	if t.ID != "" {
		if _, ok := store.Get(t.ID); !ok {
			return "", fmt.Errorf("%w: no element with id %q", ErrTargetOutOfRange, t.ID)
		}
		return t.ID, nil
	}
	e, ok := store.At(t.Position)
	if !ok {
		return "", fmt.Errorf("%w: position %d of %d", ErrTargetOutOfRange, t.Position, store.Len())
	}
	return e.ID, nil
}
