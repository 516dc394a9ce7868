// Package overlay composites rendered blocks over a base view.
// It is ANSI-aware: styled base content survives on both sides of the
// overlaid block.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Composite places layer over base with its top-left corner at cell (x, y).
// Layer lines that fall outside the base are clipped; base styling to the
// left and right of the layer is preserved.
func Composite(base, layer string, x, y int) string {
	if layer == "" {
		return base
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	layerLines := strings.Split(layer, "\n")

	for i, ll := range layerLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = spliceLine(baseLines[row], ll, x)
	}

	return strings.Join(baseLines, "\n")
}

// spliceLine overlays layer onto line starting at column x.
func spliceLine(line, layer string, x int) string {
	lw := ansi.StringWidth(layer)
	if lw == 0 {
		return line
	}

	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	right := ""
	if ansi.StringWidth(line) > x+lw {
		right = ansi.TruncateLeft(line, x+lw, "")
	}

	return left + layer + right
}

// Height returns the number of lines in a rendered block.
func Height(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// ClipRight truncates a rendered block so no line exceeds width cells,
// keeping the leftmost columns. Used to clip cards sliding in from the
// trailing edge.
func ClipRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if ansi.StringWidth(l) > width {
			lines[i] = ansi.Truncate(l, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
