package model

import (
	"fmt"
	"strings"
	"unicode"
)

// Orientation decides whether an element stacks on its own line or joins a row
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}

// IsValid reports whether o is one of the known orientations
func (o Orientation) IsValid() bool {
	return o == OrientationVertical || o == OrientationHorizontal
}

// ParseOrientation converts user input into an Orientation
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	if !o.IsValid() {
		return "", fmt.Errorf("unknown orientation: %q", s)
	}
	return o, nil
}

// Radius is a border-radius token
type Radius string

const (
	RadiusNone Radius = "none"
	RadiusXS   Radius = "xs"
	RadiusSM   Radius = "sm"
	RadiusMD   Radius = "md"
	RadiusLG   Radius = "lg"
	RadiusXL   Radius = "xl"
	Radius2XL  Radius = "2xl"
	Radius3XL  Radius = "3xl"
	RadiusFull Radius = "full"
)

var radiusScale = []Radius{
	RadiusNone, RadiusXS, RadiusSM, RadiusMD, RadiusLG,
	RadiusXL, Radius2XL, Radius3XL, RadiusFull,
}

// RadiusScale returns the radius tokens from smallest to largest
func RadiusScale() []Radius {
	out := make([]Radius, len(radiusScale))
	copy(out, radiusScale)
	return out
}

// String returns the string representation of Radius
func (r Radius) String() string {
	return string(r)
}

// IsValid reports whether r belongs to the radius scale
func (r Radius) IsValid() bool {
	for _, candidate := range radiusScale {
		if r == candidate {
			return true
		}
	}
	return false
}

// ParseRadius converts user input into a Radius
func ParseRadius(s string) (Radius, error) {
	r := Radius(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown border radius: %q", s)
	}
	return r, nil
}

// Element is one rectangular skeleton placeholder.
//
// Width and Height hold either a percentage ("50%"), a pixel length ("20px")
// or any free-form text. An empty Color means default styling. RowID is empty
// for vertical elements; horizontal elements sharing a RowID form one row.
type Element struct {
	ID           string      `json:"id" yaml:"id"`
	Width        string      `json:"width" yaml:"width"`
	Height       string      `json:"height" yaml:"height"`
	Orientation  Orientation `json:"orientation" yaml:"orientation"`
	BorderRadius Radius      `json:"border_radius" yaml:"border_radius"`
	Color        string      `json:"color,omitempty" yaml:"color,omitempty"`
	RowID        string      `json:"row_id,omitempty" yaml:"row_id,omitempty"`
}

// IsHorizontal returns true if the element takes part in a row
func (e Element) IsHorizontal() bool {
	return e.Orientation == OrientationHorizontal
}

// HasRow returns true if the element carries a row id
func (e Element) HasRow() bool {
	return e.RowID != ""
}

// Default element values used by add operations
const (
	DefaultWidth  = "100%"
	DefaultHeight = "20px"
	DefaultRadius = RadiusMD
)

// NewElement returns an element with default size and styling
func NewElement(id string, orientation Orientation) Element {
	return Element{
		ID:           id,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Orientation:  orientation,
		BorderRadius: DefaultRadius,
	}
}

// DefaultElements returns the starting stack of three vertical bars.
// ids must hold at least three identifiers.
func DefaultElements(ids ...string) []Element {
	widths := []string{"100%", "80%", "60%"}
	out := make([]Element, 0, len(widths))
	for i, w := range widths {
		if i >= len(ids) {
			break
		}
		e := NewElement(ids[i], OrientationVertical)
		e.Width = w
		out = append(out, e)
	}
	return out
}

// Clone returns a copy of the list that shares no backing array with elements
func Clone(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}

// IndexOf returns the position of the element with the given id, or -1
func IndexOf(elements []Element, id string) int {
	for i, e := range elements {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// unsafeColorRunes break out of a class attribute or split a class token
const unsafeColorRunes = "\"'`<>{}\\"

// ValidateColor rejects colors that cannot sit inside a class attribute.
// Empty means default styling and is valid.
func ValidateColor(color string) error {
	for _, r := range color {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(unsafeColorRunes, r) {
			return fmt.Errorf("invalid color %q: unexpected %q", color, r)
		}
	}
	return nil
}
