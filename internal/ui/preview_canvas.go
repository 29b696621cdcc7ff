package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/preview"
	"github.com/ytget/skeletonne/internal/tokens"
)

// radiusPixels mirrors the Tailwind rounded-* scale
var radiusPixels = map[model.Radius]float32{
	model.RadiusNone: 0,
	model.RadiusXS:   2,
	model.RadiusSM:   4,
	model.RadiusMD:   6,
	model.RadiusLG:   8,
	model.RadiusXL:   12,
	model.Radius2XL:  16,
	model.Radius3XL:  24,
	model.RadiusFull: 9999,
}

// Frame is the position and size of one painted block
type Frame struct {
	Position fyne.Position
	Size     fyne.Size
}

// BlockSize returns the painted size of e. available is the width the block
// may take; shares is how many blocks split it when the width cannot be
// measured.
func BlockSize(e model.Element, available float32, shares int) fyne.Size {
	if shares < 1 {
		shares = 1
	}
	if available < 1 {
		available = 1
	}

	width := available / float32(shares)
	if measured, ok := tokens.Measure(e.Width, float64(available)); ok {
		width = float32(measured)
	}
	width = clampFloat(width, 1, available)

	height := PreviewBlockHeight
	if px, ok := tokens.Measure(e.Height, 0); ok && strings.HasSuffix(strings.TrimSpace(e.Height), tokens.PixelSuffix) {
		height = float32(px)
	}
	if height < 1 {
		height = 1
	}

	return fyne.NewSize(width, height)
}

// Arrange lays units out top to bottom within width. Frames come back in
// layout.Flatten order.
func Arrange(units []layout.Unit, width float32) []Frame {
	frames := make([]Frame, 0, len(units))
	var y float32

	for i, u := range units {
		if i > 0 {
			y += PreviewUnitGap
		}

		if !u.IsRow() {
			for j, e := range u.Elements {
				if j > 0 {
					y += PreviewUnitGap
				}
				size := BlockSize(e, width, 1)
				frames = append(frames, Frame{Position: fyne.NewPos(0, y), Size: size})
				y += size.Height
			}
			continue
		}

		n := len(u.Elements)
		available := width - PreviewRowGap*float32(n-1)
		var x, rowHeight float32
		for _, e := range u.Elements {
			size := BlockSize(e, available, n)
			frames = append(frames, Frame{Position: fyne.NewPos(x, y), Size: size})
			x += size.Width + PreviewRowGap
			if size.Height > rowHeight {
				rowHeight = size.Height
			}
		}
		y += rowHeight
	}
	return frames
}

// CornerRadius returns the corner radius for r, capped to half the shorter side
func CornerRadius(r model.Radius, size fyne.Size) float32 {
	px, ok := radiusPixels[r]
	if !ok {
		px = radiusPixels[model.DefaultRadius]
	}
	limit := size.Width
	if size.Height < limit {
		limit = size.Height
	}
	if px > limit/2 {
		px = limit / 2
	}
	return px
}

// BlockColor returns the fill of e, falling back to the default gray
func BlockColor(e model.Element) color.Color {
	c, err := colorful.Hex(preview.ResolveColor(e.Color, preview.DefaultColor))
	if err != nil {
		return color.Gray{Y: 0xd1}
	}
	return c
}

// previewLayout positions one rectangle per element
type previewLayout struct {
	units    []layout.Unit
	elements []model.Element
}

func (p *previewLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	frames := Arrange(p.units, size.Width)
	for i, o := range objects {
		if i >= len(frames) {
			break
		}
		o.Move(frames[i].Position)
		o.Resize(frames[i].Size)
		if rect, ok := o.(*canvas.Rectangle); ok && i < len(p.elements) {
			rect.CornerRadius = CornerRadius(p.elements[i].BorderRadius, frames[i].Size)
		}
	}
}

func (p *previewLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var height float32
	for _, f := range Arrange(p.units, PreviewMinWidth) {
		if bottom := f.Position.Y + f.Size.Height; bottom > height {
			height = bottom
		}
	}
	return fyne.NewSize(PreviewMinWidth, height)
}

// Preview paints the grouped layout as rounded rectangles
type Preview struct {
	widget.BaseWidget

	layout     *previewLayout
	blocks     *fyne.Container
	background *canvas.Rectangle
}

// NewPreview creates an empty preview
func NewPreview() *Preview {
	p := &Preview{layout: &previewLayout{}}
	p.blocks = container.New(p.layout)
	p.background = canvas.NewRectangle(previewBackground())
	p.background.CornerRadius = radiusPixels[model.RadiusLG]
	p.ExtendBaseWidget(p)
	return p
}

// SetElements replaces the painted layout
func (p *Preview) SetElements(elements []model.Element) {
	units := layout.Group(elements)
	p.layout.units = units
	p.layout.elements = layout.Flatten(units)

	objects := make([]fyne.CanvasObject, 0, len(p.layout.elements))
	for _, e := range p.layout.elements {
		objects = append(objects, canvas.NewRectangle(BlockColor(e)))
	}
	p.blocks.Objects = objects
	p.blocks.Refresh()
	p.Refresh()
}

// BlockCount returns the number of painted rectangles
func (p *Preview) BlockCount() int {
	return len(p.blocks.Objects)
}

// CreateRenderer creates the widget renderer
func (p *Preview) CreateRenderer() fyne.WidgetRenderer {
	inset := container.New(&insetLayout{padding: PreviewPadding}, p.blocks)
	return widget.NewSimpleRenderer(container.NewStack(p.background, inset))
}

// insetLayout pads its single child on every side
type insetLayout struct {
	padding float32
}

func (l *insetLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	inner := fyne.NewSize(size.Width-2*l.padding, size.Height-2*l.padding)
	for _, o := range objects {
		o.Move(fyne.NewPos(l.padding, l.padding))
		o.Resize(inner)
	}
}

func (l *insetLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var min fyne.Size
	for _, o := range objects {
		min = min.Max(o.MinSize())
	}
	return min.Add(fyne.NewSize(2*l.padding, 2*l.padding))
}

func previewBackground() color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return color.White
	}
	return app.Settings().Theme().Color(ColorNamePreviewPanel, app.Settings().ThemeVariant())
}

func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
