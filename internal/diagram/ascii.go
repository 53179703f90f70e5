package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/alexiusacademia/goinertia/internal/section"
)

// Raster characters.
const (
	SolidChar    = '█'
	HoleChar     = '·'
	EmptyChar    = ' '
	CentroidChar = '+'
)

// ASCIIOptions sets the raster size in characters. Height is an upper
// bound; the actual number of rows follows the section's aspect ratio.
type ASCIIOptions struct {
	Width  int
	Height int
}

// DefaultASCIIOptions fits a standard terminal.
var DefaultASCIIOptions = ASCIIOptions{Width: 60, Height: 30}

// DrawASCIISection rasterizes the figures of a section. Cells covered by
// more solid than hole area are drawn solid, cells where a hole removes
// material are dotted and the global centroid of res is marked with '+'.
func DrawASCIISection(figs []figure.Figure, res section.Result, opts ASCIIOptions) string {
	if len(figs) == 0 {
		return ""
	}
	if opts.Width <= 0 {
		opts.Width = DefaultASCIIOptions.Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultASCIIOptions.Height
	}

	outlines := make([][]figure.Point, len(figs))
	var all []figure.Point
	for i, f := range figs {
		outlines[i] = f.Outline(figure.DefaultSegments)
		all = append(all, outlines[i]...)
	}
	lo, hi := figure.Bounds(all)
	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y
	if spanX <= 0 || spanY <= 0 {
		return ""
	}

	// Terminal cells are about twice as tall as they are wide.
	cols := opts.Width
	rows := int(math.Round(float64(cols) * spanY / spanX / 2))
	if rows > opts.Height {
		rows = opts.Height
	}
	if rows < 1 {
		rows = 1
	}
	dx, dy := spanX/float64(cols), spanY/float64(rows)

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		y := hi.Y - (float64(r)+0.5)*dy
		for c := range grid[r] {
			x := lo.X + (float64(c)+0.5)*dx
			grid[r][c] = cell(figs, outlines, figure.Point{X: x, Y: y})
		}
	}

	cr := int((hi.Y - res.Yg) / dy)
	cc := int((res.Xg - lo.X) / dx)
	if cr >= 0 && cr < rows && cc >= 0 && cc < cols {
		grid[cr][cc] = CentroidChar
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  SECTION\n")
	sb.WriteString("  ───────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("  x: %.3f … %.3f %s   y: %.3f … %.3f %s\n", lo.X, hi.X, res.Unit, lo.Y, hi.Y, res.Unit))
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  %c = Solid   %c = Hole   %c = Centroid (%.3f, %.3f)\n", SolidChar, HoleChar, CentroidChar, res.Xg, res.Yg))

	return sb.String()
}

func cell(figs []figure.Figure, outlines [][]figure.Point, p figure.Point) rune {
	net, inHole := 0, false
	for i, f := range figs {
		if !figure.Contains(outlines[i], p) {
			continue
		}
		if f.IsHole() {
			net--
			inHole = true
		} else {
			net++
		}
	}
	switch {
	case net > 0:
		return SolidChar
	case inHole:
		return HoleChar
	}
	return EmptyChar
}

// DrawSummaryBox creates a summary box for results
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

// ResultLines formats the main quantities of res for DrawSummaryBox.
// Angles are given in degrees for the named convention.
func ResultLines(res section.Result, angles string) []string {
	if angles != section.AnglesClockwise {
		angles = section.AnglesMath
	}
	a1, a2 := res.Angles(angles)
	iu := res.InertiaUnit()
	return []string{
		fmt.Sprintf("A   = %.4f %s", res.Area, res.AreaUnit()),
		fmt.Sprintf("Xg  = %.4f %s   Yg = %.4f %s", res.Xg, res.Unit, res.Yg, res.Unit),
		fmt.Sprintf("Ix  = %.4f %s", res.Ix, iu),
		fmt.Sprintf("Iy  = %.4f %s", res.Iy, iu),
		fmt.Sprintf("Ixy = %.4f %s", res.Ixy, iu),
		fmt.Sprintf("I1  = %.4f %s", res.I1, iu),
		fmt.Sprintf("I2  = %.4f %s", res.I2, iu),
		fmt.Sprintf("α1  = %.2f°   α2 = %.2f° (%s)", a1, a2, angles),
	}
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
