package preview

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
)

func plainOptions() Options {
	opts := DefaultOptions()
	opts.Renderer = NewRenderer(io.Discard, termenv.Ascii)
	return opts
}

func TestRender_DefaultStack(t *testing.T) {
	got := Render(model.DefaultElements("a", "b", "c"), plainOptions())

	expected := strings.Join([]string{
		strings.Repeat("█", 60),
		"",
		strings.Repeat("█", 48),
		"",
		strings.Repeat("█", 36),
	}, "\n")
	assert.Equal(t, expected, got)
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(nil, plainOptions()))
}

func TestRender_RowSharesWidth(t *testing.T) {
	policy := layout.NewPolicy(layout.NewSequenceGenerator())
	list := policy.Add(nil, model.OrientationHorizontal)
	list = policy.Add(list, model.OrientationHorizontal)

	got := Render(list, plainOptions())
	assert.Equal(t, strings.Repeat("█", 29)+" "+strings.Repeat("█", 29), got)
	assert.LessOrEqual(t, lipgloss.Width(got), DefaultColumns)
}

func TestRender_RowPadsShorterMembers(t *testing.T) {
	tall := model.NewElement("a", model.OrientationHorizontal)
	tall.RowID = "r"
	tall.Height = "48px"
	short := model.NewElement("b", model.OrientationHorizontal)
	short.RowID = "r"

	got := Render(layout.Redistribute([]model.Element{tall, short}), plainOptions())
	assert.Equal(t, 3, lipgloss.Height(got))
	for _, line := range strings.Split(got, "\n") {
		assert.Equal(t, 59, lipgloss.Width(line))
	}
}

func TestRender_MatchesGrouping(t *testing.T) {
	a := model.NewElement("a", model.OrientationHorizontal)
	a.RowID = "r"
	b := model.NewElement("b", model.OrientationVertical)
	c := model.NewElement("c", model.OrientationHorizontal)
	c.RowID = "r"
	elements := layout.Redistribute([]model.Element{a, b, c})

	got := Render(elements, plainOptions())
	blocks := strings.Split(got, "\n\n")
	require.Len(t, blocks, 2, "row members render together at the first member's position")
	assert.Contains(t, blocks[0], " ")
	assert.Equal(t, strings.Repeat("█", 60), blocks[1])
}

func TestRender_Colors(t *testing.T) {
	opts := DefaultOptions()
	opts.Renderer = NewRenderer(io.Discard, termenv.TrueColor)

	e := model.NewElement("a", model.OrientationVertical)
	e.Color = "#ff0000"
	got := Render([]model.Element{e}, opts)
	assert.Contains(t, got, "38;2;255;0;0")
	assert.Contains(t, got, "█")
}

func TestBlockSize(t *testing.T) {
	opts := plainOptions()

	tests := []struct {
		width, height string
		w, h          int
	}{
		{"100%", "20px", 60, 1},
		{"50%", "48px", 30, 3},
		{"64px", "8px", 8, 1},
		{"2rem", "auto", 60, 1},
		{"250%", "0px", 60, 1},
	}

	for _, test := range tests {
		e := model.NewElement("x", model.OrientationVertical)
		e.Width, e.Height = test.width, test.height
		w, h := BlockSize(e, 60, 1, opts)
		assert.Equal(t, test.w, w, "width of %s", test.width)
		assert.Equal(t, test.h, h, "height of %s", test.height)
	}

	e := model.NewElement("x", model.OrientationHorizontal)
	e.Width = "auto"
	w, _ := BlockSize(e, 59, 2, opts)
	assert.Equal(t, 29, w, "unmeasurable row members split the row equally")
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, "#ff0000", ResolveColor("#FF0000", DefaultColor))
	assert.Equal(t, "#ffffff", ResolveColor("#fff", DefaultColor))
	assert.Equal(t, DefaultColor, ResolveColor("red", DefaultColor))
	assert.Equal(t, DefaultColor, ResolveColor("", DefaultColor))
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Gap: -3, DefaultColor: "nope"}.withDefaults()
	assert.Equal(t, DefaultColumns, opts.Columns)
	assert.Equal(t, DefaultMaxLines, opts.MaxLines)
	assert.Equal(t, 0, opts.Gap)
	assert.Equal(t, DefaultGlyph, opts.Glyph)
	assert.Equal(t, DefaultColor, opts.DefaultColor)
	assert.NotNil(t, opts.Renderer)
}

func TestBlockSize_CapsHugeHeights(t *testing.T) {
	opts := plainOptions()

	for _, height := range []string{"1e12px", "16000000px", "1e308px"} {
		e := model.NewElement("x", model.OrientationVertical)
		e.Height = height
		_, h := BlockSize(e, 60, 1, opts)
		assert.Equal(t, DefaultMaxLines, h, "height of %s", height)
	}

	opts.MaxLines = 2
	e := model.NewElement("x", model.OrientationVertical)
	e.Height = "1e12px"
	got := Render([]model.Element{e}, opts)
	assert.Equal(t, strings.Repeat("█", 60)+"\n"+strings.Repeat("█", 60), got)
}

func TestOptions_CapsColumns(t *testing.T) {
	opts := Options{Columns: 1 << 30}.withDefaults()
	assert.Equal(t, MaxColumns, opts.Columns)
}
