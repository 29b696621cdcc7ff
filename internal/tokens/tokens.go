package tokens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/skeletonne/internal/model"
)

// Axis selects which pixel table applies to a dimension
type Axis int

const (
	AxisWidth Axis = iota
	AxisHeight
)

// String returns the class prefix stem for the axis
func (a Axis) String() string {
	if a == AxisHeight {
		return "height"
	}
	return "width"
}

// Prefix returns the utility-class prefix for the axis
func (a Axis) Prefix() string {
	if a == AxisHeight {
		return "h-"
	}
	return "w-"
}

// ParseAxis converts "width"/"w" or "height"/"h" into an Axis
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "width", "w", "":
		return AxisWidth, nil
	case "height", "h":
		return AxisHeight, nil
	default:
		return AxisWidth, fmt.Errorf("unknown axis: %q", s)
	}
}

// Unit suffixes recognized by the mapper
const (
	PercentSuffix = "%"
	PixelSuffix   = "px"
)

var percentScale = map[int]string{
	100: "full",
	75:  "3/4",
	66:  "2/3",
	60:  "3/5",
	50:  "1/2",
	40:  "2/5",
	33:  "1/3",
	25:  "1/4",
	20:  "1/5",
	16:  "1/6",
}

var heightScale = map[int]string{
	4:   "1",
	8:   "2",
	12:  "3",
	16:  "4",
	20:  "5",
	24:  "6",
	28:  "7",
	32:  "8",
	36:  "9",
	40:  "10",
	44:  "11",
	48:  "12",
	56:  "14",
	64:  "16",
	80:  "20",
	96:  "24",
	112: "28",
	128: "32",
}

var widthScale = map[int]string{
	16:  "4",
	20:  "5",
	24:  "6",
	32:  "8",
	40:  "10",
	48:  "12",
	56:  "14",
	64:  "16",
	80:  "20",
	96:  "24",
	112: "28",
	128: "32",
	144: "36",
	160: "40",
	176: "44",
	192: "48",
	208: "52",
	224: "56",
	240: "60",
	256: "64",
	288: "72",
	320: "80",
	384: "96",
}

// Token maps a dimension string to a scale token such as "1/2", "6" or
// "[37%]". Values outside the tables fall back to an arbitrary-value token
// wrapping the original literal.
func Token(value string, axis Axis) string {
	if strings.HasSuffix(value, PercentSuffix) {
		if n, ok := leadingInt(strings.TrimSuffix(value, PercentSuffix)); ok {
			if token, found := percentScale[n]; found {
				return token
			}
		}
		return Arbitrary(value)
	}

	if strings.HasSuffix(value, PixelSuffix) {
		table := widthScale
		if axis == AxisHeight {
			table = heightScale
		}
		if n, ok := leadingInt(strings.TrimSuffix(value, PixelSuffix)); ok {
			if token, found := table[n]; found {
				return token
			}
		}
	}

	return Arbitrary(value)
}

// Class returns the utility class for a dimension, e.g. "w-1/2" or "h-[2rem]"
func Class(value string, axis Axis) string {
	return axis.Prefix() + Token(value, axis)
}

// Arbitrary wraps a literal into an arbitrary-value token
func Arbitrary(value string) string {
	return "[" + value + "]"
}

// IsArbitrary reports whether token is an arbitrary-value token
func IsArbitrary(token string) bool {
	return strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]")
}

// RadiusClass returns the rounded-* class for a radius token
func RadiusClass(r model.Radius) string {
	switch r {
	case model.RadiusFull:
		return "rounded-full"
	case model.RadiusNone:
		return "rounded-none"
	case "":
		return "rounded-" + string(model.DefaultRadius)
	default:
		return "rounded-" + string(r)
	}
}

// BackgroundClass returns the arbitrary background class for a color, or an
// empty string when the color is unset
func BackgroundClass(color string) string {
	if color == "" {
		return ""
	}
	return "bg-" + Arbitrary(color)
}

// leadingInt parses the integer prefix of s the way browsers parse
// parseInt: leading whitespace and a sign are accepted, parsing stops at the
// first non-digit, and at least one digit is required.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
