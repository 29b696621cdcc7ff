package layout

import "github.com/ytget/skeletonne/internal/model"

// UnitKind distinguishes standalone blocks from rows
type UnitKind int

const (
	UnitStandalone UnitKind = iota
	UnitRow
)

// String returns a readable name for the kind
func (k UnitKind) String() string {
	switch k {
	case UnitStandalone:
		return "standalone"
	case UnitRow:
		return "row"
	default:
		return "unknown"
	}
}

// SingleRowPrefix keys rows made of one horizontal element without a row id
const SingleRowPrefix = "single-"

// Unit is one entry of the rendering order: a standalone element or a row
type Unit struct {
	Kind     UnitKind
	Key      string
	Elements []model.Element
}

// IsRow returns true for row units
func (u Unit) IsRow() bool {
	return u.Kind == UnitRow
}

// Group converts the master list into render units in a single pass.
//
// A row is placed where its first member appears and collects every
// horizontal element sharing its row id, in master-list order, even when they
// are not contiguous. Horizontal elements without a row id become a row of
// their own keyed by the element id.
func Group(elements []model.Element) []Unit {
	units := make([]Unit, 0, len(elements))
	seen := make(map[string]bool)
	seenSingle := make(map[string]bool)

	for _, e := range elements {
		if !e.IsHorizontal() {
			units = append(units, Unit{
				Kind:     UnitStandalone,
				Key:      e.ID,
				Elements: []model.Element{e},
			})
			continue
		}

		if !e.HasRow() {
			if seenSingle[e.ID] {
				continue
			}
			seenSingle[e.ID] = true
			units = append(units, Unit{
				Kind:     UnitRow,
				Key:      SingleRowPrefix + e.ID,
				Elements: []model.Element{e},
			})
			continue
		}

		if seen[e.RowID] {
			continue
		}
		seen[e.RowID] = true
		units = append(units, Unit{
			Kind:     UnitRow,
			Key:      e.RowID,
			Elements: RowMembers(elements, e.RowID),
		})
	}

	return units
}

// RowMembers returns the horizontal elements that carry rowID, in list order
func RowMembers(elements []model.Element, rowID string) []model.Element {
	if rowID == "" {
		return nil
	}
	var members []model.Element
	for _, e := range elements {
		if e.IsHorizontal() && e.RowID == rowID {
			members = append(members, e)
		}
	}
	return members
}

// RowIDs returns the distinct row ids of horizontal elements in first-seen order
func RowIDs(elements []model.Element) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, e := range elements {
		if !e.IsHorizontal() || !e.HasRow() || seen[e.RowID] {
			continue
		}
		seen[e.RowID] = true
		ids = append(ids, e.RowID)
	}
	return ids
}

// Flatten returns the elements of units in rendering order
func Flatten(units []Unit) []model.Element {
	var out []model.Element
	for _, u := range units {
		out = append(out, u.Elements...)
	}
	return out
}
