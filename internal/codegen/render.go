package codegen

import (
	"fmt"
	"strings"

	"github.com/ytget/skeletonne/internal/layout"
)

const reactImports = `import { Skeleton } from "@/components/ui/skeleton";
import { Card, CardContent } from "@/components/ui/card";
`

func renderReact(units []layout.Unit, opts Options) string {
	var b strings.Builder

	b.WriteString(reactImports)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export const %s = () => {\n", opts.ComponentName)
	b.WriteString("  return (\n")
	b.WriteString("    <Card>\n")
	fmt.Fprintf(&b, "      <CardContent className=%q>\n", CardPadding)
	fmt.Fprintf(&b, "        <div className=%q>\n", StackClasses)

	writeUnits(&b, units, strings.Repeat(" ", 10),
		func(b *strings.Builder, indent, classes string) {
			fmt.Fprintf(b, "%s<Skeleton className=\"%s\" />\n", indent, classes)
		},
		fmt.Sprintf("<div className=%q>", RowClasses),
		"</div>",
	)

	b.WriteString("        </div>\n")
	b.WriteString("      </CardContent>\n")
	b.WriteString("    </Card>\n")
	b.WriteString("  );\n")
	b.WriteString("};\n")
	return b.String()
}

func renderHTML(units []layout.Unit, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<!-- %s -->\n", opts.ComponentName)
	fmt.Fprintf(&b, "<div class=%q>\n", CardPadding)
	fmt.Fprintf(&b, "  <div class=%q>\n", StackClasses)

	writeUnits(&b, units, strings.Repeat(" ", 4),
		func(b *strings.Builder, indent, classes string) {
			fmt.Fprintf(b, "%s<div class=\"%s\"></div>\n", indent, classes)
		},
		fmt.Sprintf("<div class=%q>", RowClasses),
		"</div>",
	)

	b.WriteString("  </div>\n")
	b.WriteString("</div>\n")
	return b.String()
}
