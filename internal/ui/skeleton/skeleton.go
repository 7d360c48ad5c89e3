// Package skeleton renders placeholder blocks shown while content loads.
package skeleton

import (
	"strings"

	"github.com/nhle/admin-console/internal/theme"
)

// widths cycles so consecutive rows look like text of uneven length.
var widths = []int{80, 55, 70, 40}

// Rows renders count placeholder rows of two lines each, sized as a
// percentage of width.
func Rows(width, count int) string {
	if width <= 4 || count <= 0 {
		return ""
	}

	var b strings.Builder
	for i := range count {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("  ")
		b.WriteString(Block(width*widths[i%len(widths)]/100 - 2))
		b.WriteString("\n  ")
		b.WriteString(Block(width*widths[(i+1)%len(widths)]/200 - 2))
	}
	return b.String()
}

// Block renders a single placeholder bar of the given width.
func Block(width int) string {
	if width <= 0 {
		return ""
	}
	return theme.SkeletonStyle.Render(strings.Repeat(" ", width))
}
