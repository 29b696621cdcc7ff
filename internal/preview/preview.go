package preview

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/tokens"
)

// Defaults
const (
	DefaultColumns    = 60
	MaxColumns        = 1000
	DefaultMaxLines   = 24
	DefaultGap        = 1
	DefaultLinePixels = 16
	DefaultGlyph      = "█"
	DefaultColor      = "#d1d5db"
)

// Options control how blocks are sized and painted
type Options struct {
	// Columns is the width of the preview in terminal cells, at most MaxColumns
	Columns int
	// MaxLines caps the height of a single block
	MaxLines int
	// Gap is the number of cells between row members
	Gap int
	// LinePixels is how many pixels one terminal line stands for
	LinePixels float64
	Glyph      string
	// DefaultColor paints elements without a valid color
	DefaultColor string
	Renderer     *lipgloss.Renderer
}

// DefaultOptions returns options for a 60-column preview
func DefaultOptions() Options {
	return Options{
		Columns:      DefaultColumns,
		MaxLines:     DefaultMaxLines,
		Gap:          DefaultGap,
		LinePixels:   DefaultLinePixels,
		Glyph:        DefaultGlyph,
		DefaultColor: DefaultColor,
	}
}

// NewRenderer returns a lipgloss renderer writing to w with a fixed color
// profile, so output does not depend on terminal detection.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return r
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Columns <= 0 {
		o.Columns = d.Columns
	}
	if o.Columns > MaxColumns {
		o.Columns = MaxColumns
	}
	if o.MaxLines <= 0 {
		o.MaxLines = d.MaxLines
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.LinePixels <= 0 {
		o.LinePixels = d.LinePixels
	}
	if o.Glyph == "" {
		o.Glyph = d.Glyph
	}
	if _, err := colorful.Hex(o.DefaultColor); err != nil {
		o.DefaultColor = d.DefaultColor
	}
	if o.Renderer == nil {
		o.Renderer = lipgloss.DefaultRenderer()
	}
	return o
}

// Render paints elements
func Render(elements []model.Element, opts Options) string {
	return RenderUnits(layout.Group(elements), opts)
}

// RenderUnits paints already grouped units, separated by blank lines
func RenderUnits(units []layout.Unit, opts Options) string {
	opts = opts.withDefaults()

	blocks := make([]string, 0, len(units))
	for _, u := range units {
		if !u.IsRow() {
			for _, e := range u.Elements {
				w, h := BlockSize(e, opts.Columns, 1, opts)
				blocks = append(blocks, paint(e, w, h, opts))
			}
			continue
		}
		blocks = append(blocks, renderRow(u.Elements, opts))
	}
	return strings.Join(blocks, "\n\n")
}

func renderRow(members []model.Element, opts Options) string {
	n := len(members)
	available := opts.Columns - opts.Gap*(n-1)
	if available < n {
		available = n
	}

	gap := strings.Repeat(" ", opts.Gap)
	parts := make([]string, 0, 2*n-1)
	for i, e := range members {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		w, h := BlockSize(e, available, n, opts)
		parts = append(parts, paint(e, w, h, opts))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// BlockSize returns the cell width and line height of e. available is the
// space the element may take; shares is how many elements split it when the
// width cannot be measured.
func BlockSize(e model.Element, available, shares int, opts Options) (int, int) {
	opts = opts.withDefaults()
	if shares < 1 {
		shares = 1
	}

	width := available / shares
	if measured, ok := tokens.Measure(e.Width, float64(available)); ok {
		if strings.HasSuffix(strings.TrimSpace(e.Width), tokens.PixelSuffix) {
			// a cell is about half as wide as a line is tall
			measured = measured / (opts.LinePixels / 2)
		}
		width = int(math.Floor(measured))
	}
	width = clamp(width, 1, available)

	height := 1
	if px, ok := tokens.Measure(e.Height, 0); ok && strings.HasSuffix(strings.TrimSpace(e.Height), tokens.PixelSuffix) {
		height = int(math.Round(math.Min(px/opts.LinePixels, float64(opts.MaxLines))))
	}
	height = clamp(height, 1, opts.MaxLines)

	return width, height
}

// ResolveColor returns color as a normalized hex string, or fallback when
// color is not a valid hex color
func ResolveColor(color, fallback string) string {
	c, err := colorful.Hex(strings.TrimSpace(color))
	if err != nil {
		return fallback
	}
	return c.Hex()
}

func paint(e model.Element, width, height int, opts Options) string {
	line := strings.Repeat(opts.Glyph, width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}

	style := opts.Renderer.NewStyle().
		Foreground(lipgloss.Color(ResolveColor(e.Color, opts.DefaultColor)))
	return style.Render(strings.Join(lines, "\n"))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
