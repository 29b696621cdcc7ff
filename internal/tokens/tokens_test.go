package tokens

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/skeletonne/internal/model"
)

func TestToken_PercentBreakpoints(t *testing.T) {
	expected := map[string]string{
		"100%": "full",
		"75%":  "3/4",
		"66%":  "2/3",
		"60%":  "3/5",
		"50%":  "1/2",
		"40%":  "2/5",
		"33%":  "1/3",
		"25%":  "1/4",
		"20%":  "1/5",
		"16%":  "1/6",
	}

	for value, token := range expected {
		for _, axis := range []Axis{AxisWidth, AxisHeight} {
			assert.Equal(t, token, Token(value, axis), "value %s axis %s", value, axis)
		}
	}
}

func TestToken_PercentUsesLeadingInteger(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"50.0000%", "1/2"},
		{"33.3333%", "1/3"},
		{"16.6667%", "1/6"},
		{"100.0000%", "full"},
		{" 25%", "1/4"},
		{"14.2857%", "[14.2857%]"},
		{"37%", "[37%]"},
		{"abc%", "[abc%]"},
		{"%", "[%]"},
		{"-50%", "[-50%]"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Token(test.value, AxisWidth), "value %q", test.value)
	}
}

func TestToken_HeightPixels(t *testing.T) {
	table := map[int]string{
		4: "1", 8: "2", 12: "3", 16: "4", 20: "5", 24: "6", 28: "7", 32: "8",
		36: "9", 40: "10", 44: "11", 48: "12", 56: "14", 64: "16", 80: "20",
		96: "24", 112: "28", 128: "32",
	}

	for px, token := range table {
		value := fmt.Sprintf("%dpx", px)
		assert.Equal(t, token, Token(value, AxisHeight), "value %s", value)
	}

	for _, miss := range []string{"2px", "52px", "60px", "144px", "0px"} {
		assert.Equal(t, "["+miss+"]", Token(miss, AxisHeight), "value %s", miss)
	}
}

func TestToken_WidthPixels(t *testing.T) {
	table := map[int]string{
		16: "4", 20: "5", 24: "6", 32: "8", 40: "10", 48: "12", 56: "14",
		64: "16", 80: "20", 96: "24", 112: "28", 128: "32", 144: "36",
		160: "40", 176: "44", 192: "48", 208: "52", 224: "56", 240: "60",
		256: "64", 288: "72", 320: "80", 384: "96",
	}

	for px, token := range table {
		value := fmt.Sprintf("%dpx", px)
		assert.Equal(t, token, Token(value, AxisWidth), "value %s", value)
	}

	// 4px, 8px and 12px only exist on the height table
	for _, miss := range []string{"4px", "8px", "12px", "36px", "400px"} {
		assert.Equal(t, "["+miss+"]", Token(miss, AxisWidth), "value %s", miss)
	}
}

func TestToken_SameValueDifferentTables(t *testing.T) {
	assert.Equal(t, "6", Token("24px", AxisHeight))
	assert.Equal(t, "6", Token("24px", AxisWidth))
	assert.Equal(t, "9", Token("36px", AxisHeight))
	assert.Equal(t, "[36px]", Token("36px", AxisWidth))
}

func TestToken_Fallback(t *testing.T) {
	for _, value := range []string{"2rem", "auto", "", "calc(100% - 2px)", "10em"} {
		token := Token(value, AxisWidth)
		require.True(t, IsArbitrary(token), "token %q", token)
		assert.Equal(t, value, token[1:len(token)-1], "fallback must keep the literal")
	}
}

func TestClass(t *testing.T) {
	assert.Equal(t, "w-1/2", Class("50%", AxisWidth))
	assert.Equal(t, "h-5", Class("20px", AxisHeight))
	assert.Equal(t, "h-[2rem]", Class("2rem", AxisHeight))
	assert.Equal(t, "w-[37%]", Class("37%", AxisWidth))
}

func TestRadiusClass(t *testing.T) {
	assert.Equal(t, "rounded-full", RadiusClass(model.RadiusFull))
	assert.Equal(t, "rounded-none", RadiusClass(model.RadiusNone))
	assert.Equal(t, "rounded-2xl", RadiusClass(model.Radius2XL))
	assert.Equal(t, "rounded-md", RadiusClass(""))
}

func TestBackgroundClass(t *testing.T) {
	assert.Equal(t, "", BackgroundClass(""))
	assert.Equal(t, "bg-[#e5e7eb]", BackgroundClass("#e5e7eb"))
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		value     string
		available float64
		expected  float64
		ok        bool
	}{
		{"50%", 400, 200, true},
		{"33.3333%", 300, 99.9999, true},
		{"20px", 400, 20, true},
		{" 12.5px ", 0, 12.5, true},
		{"2rem", 400, 0, false},
		{"-10px", 400, 0, false},
		{"x%", 400, 0, false},
	}

	for _, test := range tests {
		got, ok := Measure(test.value, test.available)
		assert.Equal(t, test.ok, ok, "value %q", test.value)
		assert.InDelta(t, test.expected, got, 1e-9, "value %q", test.value)
	}
}

func TestPercent(t *testing.T) {
	pct, ok := Percent("33.3333%")
	require.True(t, ok)
	assert.InDelta(t, 33.3333, pct, 1e-9)

	_, ok = Percent("20px")
	assert.False(t, ok)
}

func TestParseAxis(t *testing.T) {
	for input, expected := range map[string]Axis{
		"width": AxisWidth, "W": AxisWidth, "": AxisWidth,
		"height": AxisHeight, " h ": AxisHeight,
	} {
		got, err := ParseAxis(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, got, "input %q", input)
	}

	_, err := ParseAxis("depth")
	assert.Error(t, err)
}
