package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Terminal cells are about twice as tall as they are wide.
const cellAspect = 2.0

const (
	solid = "█"
	empty = " "
)

// DrawASCII rasterizes the outline into at most cols by rows characters,
// keeping its proportions, inside a frame with a caption.
func DrawASCII(o Outline, cols, rows int) string {
	if cols < 1 || rows < 1 || len(o.Rings) == 0 {
		return ""
	}

	lo, hi := o.Bounds()
	width, height := hi.X-lo.X, hi.Y-lo.Y
	step := math.Max(width/float64(cols), height/(float64(rows)*cellAspect))
	if step <= 0 {
		return ""
	}
	usedCols := clamp(int(math.Ceil(width/step)), 1, cols)
	usedRows := clamp(int(math.Ceil(height/(step*cellAspect))), 1, rows)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", o.Label))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", utf8.RuneCountInString(o.Label))))
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", usedCols)))

	// Top row first; sample each cell at its center.
	for r := 0; r < usedRows; r++ {
		y := hi.Y - (float64(r)+0.5)*height/float64(usedRows)
		sb.WriteString("  │")
		for c := 0; c < usedCols; c++ {
			x := lo.X + (float64(c)+0.5)*width/float64(usedCols)
			if o.Contains(Point{X: x, Y: y}) {
				sb.WriteString(solid)
			} else {
				sb.WriteString(empty)
			}
		}
		sb.WriteString("│\n")
	}

	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", usedCols)))
	sb.WriteString(fmt.Sprintf("  %.3f in wide x %.3f in deep\n", width, height))
	return sb.String()
}

// DrawSummaryBox frames a title and lines of text.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
