package figure

import "math"

// Tabulated coefficients for the curved figures.
const (
	SemicircleIxCoeff     = 0.1098
	QuarterCircleICoeff   = 0.0549
	QuarterCircleIxyCoeff = 0.01647
)

// Rectangle with sides parallel to the global axes.
type Rectangle struct {
	attrs
	base   float64
	height float64
}

// NewRectangle creates a rectangle of width base and height height.
func NewRectangle(base, height float64, opts ...Option) Rectangle {
	return Rectangle{
		attrs:  newAttrs("Rectangle", opts),
		base:   base,
		height: height,
	}
}

func (r Rectangle) Kind() Kind       { return KindRectangle }
func (r Rectangle) Base() float64    { return r.base }
func (r Rectangle) Height() float64  { return r.height }
func (r Rectangle) Area() float64    { return r.signed(r.base * r.height) }
func (r Rectangle) SelfIx() float64  { return r.signed(r.base * math.Pow(r.height, 3) / 12) }
func (r Rectangle) SelfIy() float64  { return r.signed(r.height * math.Pow(r.base, 3) / 12) }
func (r Rectangle) SelfIxy() float64 { return 0 }
func (Rectangle) sealed()            {}

// Circle of radius r.
type Circle struct {
	attrs
	radius float64
}

// NewCircle creates a full circle.
func NewCircle(radius float64, opts ...Option) Circle {
	return Circle{
		attrs:  newAttrs("Circle", opts),
		radius: radius,
	}
}

func (c Circle) Kind() Kind       { return KindCircle }
func (c Circle) Radius() float64  { return c.radius }
func (c Circle) Area() float64    { return c.signed(math.Pi * c.radius * c.radius) }
func (c Circle) SelfIx() float64  { return c.signed(math.Pi * math.Pow(c.radius, 4) / 4) }
func (c Circle) SelfIy() float64  { return c.signed(math.Pi * math.Pow(c.radius, 4) / 4) }
func (c Circle) SelfIxy() float64 { return 0 }
func (Circle) sealed()            {}

// RightTriangle has its legs parallel to the global axes. The sign of its
// product of inertia depends on the orientation and is supplied by the caller.
type RightTriangle struct {
	attrs
	base   float64
	height float64
	sign   int
}

// NewRightTriangle creates a right triangle with legs base and height.
// sign must be +1 or -1.
func NewRightTriangle(base, height float64, sign int, opts ...Option) (RightTriangle, error) {
	if err := validateSign(sign); err != nil {
		return RightTriangle{}, err
	}
	return RightTriangle{
		attrs:  newAttrs("Right Triangle", opts),
		base:   base,
		height: height,
		sign:   sign,
	}, nil
}

func (t RightTriangle) Kind() Kind         { return KindRightTriangle }
func (t RightTriangle) Base() float64      { return t.base }
func (t RightTriangle) Height() float64    { return t.height }
func (t RightTriangle) Sign() int          { return t.sign }
func (t RightTriangle) Quadrant() Quadrant { return t.quadrant }
func (t RightTriangle) Area() float64      { return t.signed(t.base * t.height / 2) }
func (t RightTriangle) SelfIx() float64    { return t.signed(t.base * math.Pow(t.height, 3) / 36) }
func (t RightTriangle) SelfIy() float64    { return t.signed(t.height * math.Pow(t.base, 3) / 36) }
func (RightTriangle) sealed()              {}

func (t RightTriangle) SelfIxy() float64 {
	ixy := t.base * t.base * t.height * t.height / 72
	return t.signed(float64(t.sign) * ixy)
}

// Semicircle with its diameter on a horizontal line.
type Semicircle struct {
	attrs
	radius float64
}

// NewSemicircle creates a half circle of radius r.
func NewSemicircle(radius float64, opts ...Option) Semicircle {
	return Semicircle{
		attrs:  newAttrs("Semicircle", opts),
		radius: radius,
	}
}

func (s Semicircle) Kind() Kind        { return KindSemicircle }
func (s Semicircle) Radius() float64   { return s.radius }
func (s Semicircle) Arc() ArcDirection { return s.arc }
func (s Semicircle) Area() float64     { return s.signed(math.Pi * s.radius * s.radius / 2) }
func (s Semicircle) SelfIx() float64   { return s.signed(SemicircleIxCoeff * math.Pow(s.radius, 4)) }
func (s Semicircle) SelfIy() float64   { return s.signed(math.Pi * math.Pow(s.radius, 4) / 8) }
func (s Semicircle) SelfIxy() float64  { return 0 }
func (Semicircle) sealed()             {}

// QuarterCircle bounded by two radii parallel to the global axes.
type QuarterCircle struct {
	attrs
	radius float64
	sign   int
}

// NewQuarterCircle creates a quarter circle of radius r. sign must be +1 or -1.
func NewQuarterCircle(radius float64, sign int, opts ...Option) (QuarterCircle, error) {
	if err := validateSign(sign); err != nil {
		return QuarterCircle{}, err
	}
	return QuarterCircle{
		attrs:  newAttrs("Quarter Circle", opts),
		radius: radius,
		sign:   sign,
	}, nil
}

func (q QuarterCircle) Kind() Kind         { return KindQuarterCircle }
func (q QuarterCircle) Radius() float64    { return q.radius }
func (q QuarterCircle) Sign() int          { return q.sign }
func (q QuarterCircle) Quadrant() Quadrant { return q.quadrant }
func (q QuarterCircle) Area() float64      { return q.signed(math.Pi * q.radius * q.radius / 4) }
func (q QuarterCircle) SelfIx() float64    { return q.signed(QuarterCircleICoeff * math.Pow(q.radius, 4)) }
func (q QuarterCircle) SelfIy() float64    { return q.signed(QuarterCircleICoeff * math.Pow(q.radius, 4)) }
func (QuarterCircle) sealed()              {}

func (q QuarterCircle) SelfIxy() float64 {
	return q.signed(float64(q.sign) * QuarterCircleIxyCoeff * math.Pow(q.radius, 4))
}

// Default orientation signs used when the caller does not choose one.
const (
	DefaultTriangleSign      = 1
	DefaultQuarterCircleSign = -1
)
