package codegen

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlighting defaults for terminal output
const (
	DefaultHighlightStyle     = "monokai"
	DefaultHighlightFormatter = "terminal256"
)

// lexerFor returns the chroma lexer name for a format
func lexerFor(f Format) string {
	if f == FormatHTML {
		return "html"
	}
	return "tsx"
}

// Highlight colorizes generated code for a terminal. On failure the code is
// returned unchanged so callers can always print the result.
func Highlight(code string, format Format, style string) string {
	if style == "" {
		style = DefaultHighlightStyle
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, code, lexerFor(format), DefaultHighlightFormatter, style); err != nil {
		return code
	}
	return buffer.String()
}
