package layout

import (
	"github.com/ytget/skeletonne/internal/model"
)

// OpKind names a mutation kind
type OpKind string

const (
	OpAdd    OpKind = "add"
	OpRemove OpKind = "remove"
	OpUpdate OpKind = "update"
)

// String returns the string representation of OpKind
func (k OpKind) String() string {
	return string(k)
}

// Patch lists the fields of an update. Nil fields are left untouched; a
// non-nil empty Color clears the color.
type Patch struct {
	Width        *string
	Height       *string
	BorderRadius *model.Radius
	Color        *string
	Orientation  *model.Orientation
}

// IsEmpty returns true if the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.Width == nil && p.Height == nil && p.BorderRadius == nil &&
		p.Color == nil && p.Orientation == nil
}

// Operation is one mutation intent. ID addresses the element for remove and
// update; Orientation is the requested orientation for add.
type Operation struct {
	Kind        OpKind
	ID          string
	Orientation model.Orientation
	Patch       Patch
}

// Add builds an add operation
func Add(orientation model.Orientation) Operation {
	return Operation{Kind: OpAdd, Orientation: orientation}
}

// Remove builds a remove operation
func Remove(id string) Operation {
	return Operation{Kind: OpRemove, ID: id}
}

// Update builds an update operation
func Update(id string, patch Patch) Operation {
	return Operation{Kind: OpUpdate, ID: id, Patch: patch}
}

// Policy applies mutations to an element list.
//
// New horizontal elements join the row of the last element in the list. When
// that element is vertical it is converted and the two start a new row. Rows
// are not required to sit at the tail of the list, so "last element" and
// "most recent row" can differ; the last element always wins.
type Policy struct {
	IDs      IDGenerator
	Defaults model.Element
}

// NewPolicy creates a policy with the given id source and default element
// values. A nil generator falls back to UUIDGenerator.
func NewPolicy(ids IDGenerator) *Policy {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Policy{
		IDs:      ids,
		Defaults: model.NewElement("", model.OrientationVertical),
	}
}

// Reduce applies op to elements with a default policy backed by ids
func Reduce(elements []model.Element, op Operation, ids IDGenerator) []model.Element {
	return NewPolicy(ids).Apply(elements, op)
}

// Apply dispatches op and returns the new list. Unknown kinds and unknown ids
// return an unchanged copy.
func (p *Policy) Apply(elements []model.Element, op Operation) []model.Element {
	switch op.Kind {
	case OpAdd:
		return p.Add(elements, op.Orientation)
	case OpRemove:
		return p.Remove(elements, op.ID)
	case OpUpdate:
		return p.Update(elements, op.ID, op.Patch)
	default:
		return model.Clone(elements)
	}
}

// maxMintAttempts bounds the retries when a generator keeps returning taken ids
const maxMintAttempts = 1 << 16

// freshElementID mints an element id that no element of elements carries
func (p *Policy) freshElementID(elements []model.Element) string {
	id := p.IDs.NewElementID()
	for i := 0; i < maxMintAttempts && model.IndexOf(elements, id) >= 0; i++ {
		id = p.IDs.NewElementID()
	}
	return id
}

// freshRowID mints a row id that no element of elements carries
func (p *Policy) freshRowID(elements []model.Element) string {
	taken := make(map[string]bool, len(elements))
	for _, e := range elements {
		if e.RowID != "" {
			taken[e.RowID] = true
		}
	}
	id := p.IDs.NewRowID()
	for i := 0; i < maxMintAttempts && taken[id]; i++ {
		id = p.IDs.NewRowID()
	}
	return id
}

// newElement builds a fresh element from the policy defaults
func (p *Policy) newElement(elements []model.Element, orientation model.Orientation) model.Element {
	e := p.Defaults
	e.ID = p.freshElementID(elements)
	e.Orientation = orientation
	e.RowID = ""
	if e.Width == "" {
		e.Width = model.DefaultWidth
	}
	if e.Height == "" {
		e.Height = model.DefaultHeight
	}
	if e.BorderRadius == "" {
		e.BorderRadius = model.DefaultRadius
	}
	return e
}

// Add appends a new element with the requested orientation
func (p *Policy) Add(elements []model.Element, orientation model.Orientation) []model.Element {
	if orientation != model.OrientationHorizontal {
		return append(model.Clone(elements), p.newElement(elements, model.OrientationVertical))
	}

	out := model.Clone(elements)
	added := p.newElement(elements, model.OrientationHorizontal)

	if len(out) == 0 {
		added.RowID = p.freshRowID(out)
		return Redistribute(append(out, added), added.RowID)
	}

	last := &out[len(out)-1]
	if !last.IsHorizontal() || !last.HasRow() {
		rowID := p.freshRowID(out)
		last.Orientation = model.OrientationHorizontal
		last.RowID = rowID
		added.RowID = rowID
	} else {
		added.RowID = last.RowID
	}

	return Redistribute(append(out, added), added.RowID)
}

// Remove deletes the element with id and rebalances its former row
func (p *Policy) Remove(elements []model.Element, id string) []model.Element {
	idx := model.IndexOf(elements, id)
	if idx < 0 {
		return model.Clone(elements)
	}

	removed := elements[idx]
	out := make([]model.Element, 0, len(elements)-1)
	out = append(out, elements[:idx]...)
	out = append(out, elements[idx+1:]...)

	if removed.IsHorizontal() && removed.HasRow() {
		return Redistribute(out, removed.RowID)
	}
	return out
}

// Update merges patch into the element with id. Field edits alone have no
// grouping side effects; an orientation change is applied after the merge.
func (p *Policy) Update(elements []model.Element, id string, patch Patch) []model.Element {
	out := model.Clone(elements)
	idx := model.IndexOf(out, id)
	if idx < 0 {
		return out
	}

	e := &out[idx]
	if patch.Width != nil {
		e.Width = *patch.Width
	}
	if patch.Height != nil {
		e.Height = *patch.Height
	}
	if patch.BorderRadius != nil {
		e.BorderRadius = *patch.BorderRadius
	}
	if patch.Color != nil {
		e.Color = *patch.Color
	}

	if patch.Orientation == nil || *patch.Orientation == e.Orientation {
		return out
	}
	return p.changeOrientation(out, idx, *patch.Orientation)
}

// ChangeOrientation switches the element with id to orientation
func (p *Policy) ChangeOrientation(elements []model.Element, id string, orientation model.Orientation) []model.Element {
	return p.Update(elements, id, Patch{Orientation: &orientation})
}

// changeOrientation mutates out[idx], which the caller already owns
func (p *Policy) changeOrientation(out []model.Element, idx int, orientation model.Orientation) []model.Element {
	e := &out[idx]

	if orientation == model.OrientationHorizontal {
		e.Orientation = model.OrientationHorizontal
		e.RowID = p.freshRowID(out)
		return Redistribute(out, e.RowID)
	}

	oldRow := e.RowID
	e.Orientation = model.OrientationVertical
	e.RowID = ""
	if oldRow == "" {
		return out
	}
	return Redistribute(out, oldRow)
}
