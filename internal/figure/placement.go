package figure

import (
	"fmt"
	"math"
	"strings"
)

// CentroidOffset is the distance 4/(3π) · r from the diameter of a
// semicircle, or from each straight edge of a quarter circle, to its centroid.
const CentroidOffset = 4.0 / (3.0 * math.Pi)

// Quadrant is the direction a right triangle or quarter circle opens
// towards, seen from its right-angle vertex (or circle centre).
type Quadrant int

const (
	// QuadrantAuto derives the drawing orientation from the Ixy sign.
	QuadrantAuto Quadrant = iota
	QuadrantNE            // +x, +y
	QuadrantNW            // -x, +y
	QuadrantSW            // -x, -y
	QuadrantSE            // +x, -y
)

var quadrantNames = map[string]Quadrant{
	"":     QuadrantAuto,
	"auto": QuadrantAuto,
	"ne":   QuadrantNE,
	"nw":   QuadrantNW,
	"sw":   QuadrantSW,
	"se":   QuadrantSE,
}

// ParseQuadrant accepts ne, nw, sw, se (any case) or an empty string.
func ParseQuadrant(s string) (Quadrant, error) {
	if q, ok := quadrantNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return q, nil
	}
	return 0, fmt.Errorf("%w: unknown quadrant %q", ErrInvalidParameter, s)
}

func (q Quadrant) String() string {
	switch q {
	case QuadrantNE:
		return "NE"
	case QuadrantNW:
		return "NW"
	case QuadrantSW:
		return "SW"
	case QuadrantSE:
		return "SE"
	}
	return "auto"
}

// Signs returns the unit direction (sx, sy) of the quadrant.
func (q Quadrant) Signs() (sx, sy int) {
	switch q {
	case QuadrantNW:
		return -1, 1
	case QuadrantSW:
		return -1, -1
	case QuadrantSE:
		return 1, -1
	}
	return 1, 1
}

// IxySign is the orientation sign of the product of inertia for a figure
// opening towards q. The tabulated sign (-1) flips once per mirrored axis.
func (q Quadrant) IxySign() int {
	sx, sy := q.Signs()
	flips := 0
	if sx < 0 {
		flips++
	}
	if sy < 0 {
		flips++
	}
	if flips%2 == 0 {
		return -1
	}
	return 1
}

// quadrantForSign picks a drawing orientation matching an Ixy sign.
func quadrantForSign(q Quadrant, sign int) Quadrant {
	if q != QuadrantAuto {
		return q
	}
	if sign < 0 {
		return QuadrantNE
	}
	return QuadrantNW
}

// ArcDirection is the side a semicircle's arc bulges towards.
type ArcDirection int

const (
	ArcUp ArcDirection = iota
	ArcDown
	ArcRight
	ArcLeft
)

var arcNames = map[string]ArcDirection{
	"":      ArcUp,
	"up":    ArcUp,
	"down":  ArcDown,
	"right": ArcRight,
	"left":  ArcLeft,
}

// ParseArc accepts up, down, right, left (any case) or an empty string.
func ParseArc(s string) (ArcDirection, error) {
	if d, ok := arcNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: unknown arc direction %q", ErrInvalidParameter, s)
}

func (d ArcDirection) String() string {
	switch d {
	case ArcDown:
		return "down"
	case ArcRight:
		return "right"
	case ArcLeft:
		return "left"
	}
	return "up"
}

func (d ArcDirection) unit() (ux, uy float64) {
	switch d {
	case ArcDown:
		return 0, -1
	case ArcRight:
		return 1, 0
	case ArcLeft:
		return -1, 0
	}
	return 0, 1
}

// Corner names a rectangle vertex used as placement reference.
type Corner int

const (
	BottomLeft Corner = iota
	BottomRight
	TopLeft
	TopRight
)

var cornerNames = map[string]Corner{
	"":             BottomLeft,
	"bottom-left":  BottomLeft,
	"bottom_left":  BottomLeft,
	"bottom-right": BottomRight,
	"bottom_right": BottomRight,
	"top-left":     TopLeft,
	"top_left":     TopLeft,
	"top-right":    TopRight,
	"top_right":    TopRight,
}

// ParseCorner accepts bottom-left, bottom-right, top-left, top-right.
func ParseCorner(s string) (Corner, error) {
	if c, ok := cornerNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: unknown corner %q", ErrInvalidParameter, s)
}

// RectangleAtCorner places a rectangle by one of its vertices.
func RectangleAtCorner(base, height float64, corner Corner, ref Point, opts ...Option) Rectangle {
	dx, dy := base/2, height/2
	switch corner {
	case BottomRight:
		dx = -dx
	case TopLeft:
		dy = -dy
	case TopRight:
		dx, dy = -dx, -dy
	}
	opts = append(opts, At(ref.X+dx, ref.Y+dy))
	return NewRectangle(base, height, opts...)
}

// RightTriangleAtVertex places a right triangle by its right-angle vertex.
// The orientation sign follows from the quadrant.
func RightTriangleAtVertex(base, height float64, ref Point, q Quadrant, opts ...Option) (RightTriangle, error) {
	if q == QuadrantAuto {
		return RightTriangle{}, fmt.Errorf("%w: reference placement needs an explicit quadrant", ErrInvalidParameter)
	}
	sx, sy := q.Signs()
	opts = append(opts,
		At(ref.X+float64(sx)*base/3, ref.Y+float64(sy)*height/3),
		InQuadrant(q),
	)
	return NewRightTriangle(base, height, q.IxySign(), opts...)
}

// QuarterCircleAtCenter places a quarter circle by the centre of its circle.
func QuarterCircleAtCenter(radius float64, ref Point, q Quadrant, opts ...Option) (QuarterCircle, error) {
	if q == QuadrantAuto {
		return QuarterCircle{}, fmt.Errorf("%w: reference placement needs an explicit quadrant", ErrInvalidParameter)
	}
	sx, sy := q.Signs()
	off := CentroidOffset * radius
	opts = append(opts,
		At(ref.X+float64(sx)*off, ref.Y+float64(sy)*off),
		InQuadrant(q),
	)
	return NewQuarterCircle(radius, q.IxySign(), opts...)
}

// SemicircleOnDiameter places a semicircle by the midpoint of its diameter.
// The moments are those of the tabulated horizontal-diameter semicircle
// whatever the arc direction.
func SemicircleOnDiameter(radius float64, ref Point, arc ArcDirection, opts ...Option) Semicircle {
	ux, uy := arc.unit()
	off := CentroidOffset * radius
	opts = append(opts, At(ref.X+ux*off, ref.Y+uy*off), WithArc(arc))
	return NewSemicircle(radius, opts...)
}
