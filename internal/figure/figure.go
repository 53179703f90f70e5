// Package figure provides the elementary plane figures a composite section is
// built from. Every figure reports its area and its second moments about axes
// through its own centroid, parallel to the global axes.
//
// The coordinate system is shared by all figures of a section:
// - X-axis points to the right
// - Y-axis points upward
// - (X, Y) of a figure is the position of its centroid
package figure

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParameter is returned when a figure cannot be constructed from
// the given arguments.
var ErrInvalidParameter = errors.New("invalid parameter")

// Kind identifies one of the five supported figure variants.
type Kind int

const (
	KindRectangle Kind = iota
	KindCircle
	KindRightTriangle
	KindSemicircle
	KindQuarterCircle
)

var kindNames = map[Kind]string{
	KindRectangle:     "rectangle",
	KindCircle:        "circle",
	KindRightTriangle: "right_triangle",
	KindSemicircle:    "semicircle",
	KindQuarterCircle: "quarter_circle",
}

var kindAliases = map[string]Kind{
	"rectangle":      KindRectangle,
	"rect":           KindRectangle,
	"circle":         KindCircle,
	"circ":           KindCircle,
	"right_triangle": KindRightTriangle,
	"righttriangle":  KindRightTriangle,
	"triangle":       KindRightTriangle,
	"tri":            KindRightTriangle,
	"semicircle":     KindSemicircle,
	"semi":           KindSemicircle,
	"quarter_circle": KindQuarterCircle,
	"quartercircle":  KindQuarterCircle,
	"quarter":        KindQuarterCircle,
}

// Kinds lists every variant in menu order.
var Kinds = []Kind{KindRectangle, KindCircle, KindRightTriangle, KindSemicircle, KindQuarterCircle}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind accepts canonical kind names and a few short aliases.
// Matching ignores case, spaces and dashes.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown figure type %q", ErrInvalidParameter, s)
}

// Point is a position in the section plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Figure is the capability every elementary figure provides.
//
// Area and the three self moments are signed: a hole returns the negated
// magnitude so that a section can sum all contributions uniformly.
// The set of implementations is closed to the five variants of this package.
type Figure interface {
	Kind() Kind
	Name() string
	Centroid() Point
	IsHole() bool

	Area() float64
	SelfIx() float64
	SelfIy() float64
	SelfIxy() float64

	// Outline returns the closed boundary polygon, using the given number of
	// segments for curved edges. It is meant for drawing only.
	Outline(segments int) []Point

	sealed()
}

// attrs holds the attributes shared by every variant.
type attrs struct {
	name     string
	center   Point
	hole     bool
	quadrant Quadrant
	arc      ArcDirection
}

func (a attrs) Name() string    { return a.name }
func (a attrs) Centroid() Point { return a.center }
func (a attrs) IsHole() bool    { return a.hole }

func (a attrs) signed(v float64) float64 {
	if a.hole {
		return -v
	}
	return v
}

// Option customizes the shared attributes of a figure.
type Option func(*attrs)

// At places the figure's centroid at (x, y).
func At(x, y float64) Option {
	return func(a *attrs) {
		a.center = Point{X: x, Y: y}
	}
}

// Named overrides the default display name.
func Named(name string) Option {
	return func(a *attrs) {
		if name != "" {
			a.name = name
		}
	}
}

// AsHole marks the figure as a cutout.
func AsHole() Option {
	return func(a *attrs) {
		a.hole = true
	}
}

// Hole sets the cutout flag explicitly.
func Hole(hole bool) Option {
	return func(a *attrs) {
		a.hole = hole
	}
}

// InQuadrant records the quadrant a right triangle or quarter circle opens
// towards. It only affects Outline.
func InQuadrant(q Quadrant) Option {
	return func(a *attrs) {
		a.quadrant = q
	}
}

// WithArc records the direction a semicircle's arc bulges towards. It only
// affects Outline.
func WithArc(d ArcDirection) Option {
	return func(a *attrs) {
		a.arc = d
	}
}

func newAttrs(defaultName string, opts []Option) attrs {
	a := attrs{name: defaultName}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func validateSign(sign int) error {
	if sign != 1 && sign != -1 {
		return fmt.Errorf("%w: orientation sign must be +1 or -1, got %d", ErrInvalidParameter, sign)
	}
	return nil
}
