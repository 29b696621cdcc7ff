package codegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
	"github.com/ytget/skeletonne/internal/tokens"
)

// Format selects the target markup
type Format string

const (
	FormatReact Format = "react"
	FormatHTML  Format = "html"
)

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension used when the code is saved
func (f Format) Extension() string {
	if f == FormatHTML {
		return ".html"
	}
	return ".tsx"
}

// ParseFormat converts user input into a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatReact, FormatHTML:
		return f, nil
	case "tsx", "jsx":
		return FormatReact, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", s)
	}
}

// Formats returns the supported export formats
func Formats() []Format {
	return []Format{FormatReact, FormatHTML}
}

// DefaultComponentName is used when Options.ComponentName is empty or invalid
const DefaultComponentName = "SkeletonLoader"

// Fixed utility classes of the generated markup
const (
	PulseClass     = "animate-pulse"
	RowItemClasses = "flex-1 min-w-0"
	RowClasses     = "flex items-start gap-4 w-full"
	StackClasses   = "space-y-4"
	CardPadding    = "p-6"
)

var componentNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Options configure the generated code
type Options struct {
	Format        Format
	ComponentName string
}

// DefaultOptions returns the options of the playground export
func DefaultOptions() Options {
	return Options{Format: FormatReact, ComponentName: DefaultComponentName}
}

// Normalized fills in defaults for empty or invalid fields
func (o Options) Normalized() Options {
	if o.Format != FormatHTML {
		o.Format = FormatReact
	}
	if !ValidComponentName(o.ComponentName) {
		o.ComponentName = DefaultComponentName
	}
	return o
}

// ValidComponentName reports whether name can be used as a component identifier
func ValidComponentName(name string) bool {
	return componentNamePattern.MatchString(name)
}

// Generate renders elements as markup
func Generate(elements []model.Element, opts Options) string {
	return Render(layout.Group(elements), opts)
}

// Render serializes already grouped units
func Render(units []layout.Unit, opts Options) string {
	opts = opts.Normalized()
	if opts.Format == FormatHTML {
		return renderHTML(units, opts)
	}
	return renderReact(units, opts)
}

// ElementClasses returns the class list of one block. inRow adds the
// classes that let row members share the row width.
func ElementClasses(e model.Element, inRow bool) string {
	classes := []string{PulseClass}
	if inRow {
		classes = append(classes, RowItemClasses)
	}
	classes = append(classes, tokens.RadiusClass(e.BorderRadius))
	if bg := tokens.BackgroundClass(e.Color); bg != "" {
		classes = append(classes, bg)
	}
	classes = append(classes,
		tokens.Class(e.Width, tokens.AxisWidth),
		tokens.Class(e.Height, tokens.AxisHeight),
	)
	return strings.Join(classes, " ")
}

// blockWriter writes one block element at the given indentation
type blockWriter func(b *strings.Builder, indent string, classes string)

// writeUnits writes the body shared by every format
func writeUnits(b *strings.Builder, units []layout.Unit, indent string, block blockWriter, openRow, closeRow string) {
	for _, u := range units {
		if !u.IsRow() {
			for _, e := range u.Elements {
				block(b, indent, ElementClasses(e, false))
			}
			continue
		}

		b.WriteString(indent)
		b.WriteString(openRow)
		b.WriteString("\n")
		for _, e := range u.Elements {
			block(b, indent+"  ", ElementClasses(e, true))
		}
		b.WriteString(indent)
		b.WriteString(closeRow)
		b.WriteString("\n")
	}
}
