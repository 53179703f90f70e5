package section

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"gopkg.in/yaml.v3"
)

// Definition is the file representation of a section.
//
// Example (YAML):
//
//	name: I-beam
//	unit: cm
//	figures:
//	  - type: rectangle
//	    base: 12
//	    height: 1.2
//	    y: 6.9
type Definition struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Unit        string       `json:"unit,omitempty" yaml:"unit,omitempty"`
	Figures     []FigureSpec `json:"figures" yaml:"figures"`
}

// FigureSpec describes one figure. Which dimensions apply depends on Type:
// base and height for rectangles and right triangles, radius otherwise.
type FigureSpec struct {
	Type   string  `json:"type" yaml:"type"`
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Hole   bool    `json:"hole,omitempty" yaml:"hole,omitempty"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Base   float64 `json:"base,omitempty" yaml:"base,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Radius float64 `json:"radius,omitempty" yaml:"radius,omitempty"`

	// Orientation sign of Ixy for right triangles and quarter circles
	// (+1 or -1). Zero selects the default of the figure type.
	Sign int `json:"sign,omitempty" yaml:"sign,omitempty"`

	Placement *Placement `json:"placement,omitempty" yaml:"placement,omitempty"`
}

// Placement positions a figure by a reference point instead of its centroid.
type Placement struct {
	// Mode is "centroid" (default) or "reference"
	Mode string  `json:"mode" yaml:"mode"`
	X0   float64 `json:"x0" yaml:"x0"`
	Y0   float64 `json:"y0" yaml:"y0"`

	Corner   string `json:"corner,omitempty" yaml:"corner,omitempty"`     // rectangle
	Quadrant string `json:"quadrant,omitempty" yaml:"quadrant,omitempty"` // right triangle, quarter circle
	Arc      string `json:"arc,omitempty" yaml:"arc,omitempty"`           // semicircle
}

// Placement modes.
const (
	PlaceCentroid  = "centroid"
	PlaceReference = "reference"
)

// LoadFromFile loads a section definition from a JSON or YAML file.
func LoadFromFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}
	return Decode(f, format)
}

// Decode reads a definition in the given format ("json" or "yaml") and
// validates it.
func Decode(r io.Reader, format string) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var def Definition
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &def)
	case "json":
		err = json.Unmarshal(data, &def)
	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse section definition: %w", err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks that every figure has a known type and the positive
// dimensions its type needs.
func (d *Definition) Validate() error {
	for i, spec := range d.Figures {
		if err := spec.Validate(); err != nil {
			return &ValidationError{msg: fmt.Sprintf("figure %d: %v", i+1, err), err: err}
		}
	}
	return nil
}

// Validate checks a single figure description. Dimensions must be positive
// and finite, coordinates finite.
func (s FigureSpec) Validate() error {
	kind, err := figure.ParseKind(s.Type)
	if err != nil {
		return validationErrorf("unknown figure type %q", s.Type)
	}

	switch kind {
	case figure.KindRectangle, figure.KindRightTriangle:
		if !positive(s.Base) || !positive(s.Height) {
			return validationErrorf("%s needs positive base and height", kind)
		}
	default:
		if !positive(s.Radius) {
			return validationErrorf("%s needs a positive radius", kind)
		}
	}

	if !finite(s.X) || !finite(s.Y) {
		return validationErrorf("coordinates must be finite, got (%g, %g)", s.X, s.Y)
	}
	if p := s.Placement; p != nil && (!finite(p.X0) || !finite(p.Y0)) {
		return validationErrorf("reference point must be finite, got (%g, %g)", p.X0, p.Y0)
	}

	if s.Sign != 0 && s.Sign != 1 && s.Sign != -1 {
		return fmt.Errorf("%w: sign must be +1 or -1, got %d", figure.ErrInvalidParameter, s.Sign)
	}

	if p := s.Placement; p != nil {
		mode := strings.ToLower(p.Mode)
		if mode != "" && mode != PlaceCentroid && mode != PlaceReference {
			return validationErrorf("unknown placement mode %q", p.Mode)
		}
	}
	return nil
}

// Build validates the definition and creates the section it describes.
func (d *Definition) Build() (*Section, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	sec := New(d.Unit)
	sec.Name = d.Name
	sec.Description = d.Description
	for i, spec := range d.Figures {
		f, err := spec.Figure()
		if err != nil {
			return nil, fmt.Errorf("figure %d: %w", i+1, err)
		}
		sec.Add(f)
	}
	return sec, nil
}

func (s FigureSpec) byReference() bool {
	return s.Placement != nil && strings.EqualFold(s.Placement.Mode, PlaceReference)
}

func (s FigureSpec) ref() figure.Point {
	return figure.Point{X: s.Placement.X0, Y: s.Placement.Y0}
}

// Figure converts the description into a figure value.
func (s FigureSpec) Figure() (figure.Figure, error) {
	kind, err := figure.ParseKind(s.Type)
	if err != nil {
		return nil, err
	}

	opts := []figure.Option{figure.Named(s.Name), figure.Hole(s.Hole)}
	at := figure.At(s.X, s.Y)
	var quadrant, arc string
	if s.Placement != nil {
		quadrant, arc = s.Placement.Quadrant, s.Placement.Arc
	}

	switch kind {
	case figure.KindRectangle:
		if s.byReference() {
			corner, err := figure.ParseCorner(s.Placement.Corner)
			if err != nil {
				return nil, err
			}
			return figure.RectangleAtCorner(s.Base, s.Height, corner, s.ref(), opts...), nil
		}
		return figure.NewRectangle(s.Base, s.Height, append(opts, at)...), nil

	case figure.KindCircle:
		if s.byReference() {
			at = figure.At(s.Placement.X0, s.Placement.Y0)
		}
		return figure.NewCircle(s.Radius, append(opts, at)...), nil

	case figure.KindRightTriangle:
		q, err := figure.ParseQuadrant(quadrant)
		if err != nil {
			return nil, err
		}
		if s.byReference() {
			return figure.RightTriangleAtVertex(s.Base, s.Height, s.ref(), q, opts...)
		}
		return figure.NewRightTriangle(s.Base, s.Height, signOr(s.Sign, figure.DefaultTriangleSign),
			append(opts, at, figure.InQuadrant(q))...)

	case figure.KindSemicircle:
		d, err := figure.ParseArc(arc)
		if err != nil {
			return nil, err
		}
		if s.byReference() {
			return figure.SemicircleOnDiameter(s.Radius, s.ref(), d, opts...), nil
		}
		return figure.NewSemicircle(s.Radius, append(opts, at, figure.WithArc(d))...), nil

	case figure.KindQuarterCircle:
		q, err := figure.ParseQuadrant(quadrant)
		if err != nil {
			return nil, err
		}
		if s.byReference() {
			return figure.QuarterCircleAtCenter(s.Radius, s.ref(), q, opts...)
		}
		return figure.NewQuarterCircle(s.Radius, signOr(s.Sign, figure.DefaultQuarterCircleSign),
			append(opts, at, figure.InQuadrant(q))...)
	}

	return nil, fmt.Errorf("%w: unsupported figure type %q", figure.ErrInvalidParameter, s.Type)
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func signOr(sign, def int) int {
	if sign == 0 {
		return def
	}
	return sign
}

// SpecOf describes an existing figure with its centroid placement.
func SpecOf(f figure.Figure) FigureSpec {
	c := f.Centroid()
	spec := FigureSpec{
		Type: f.Kind().String(),
		Name: f.Name(),
		Hole: f.IsHole(),
		X:    c.X,
		Y:    c.Y,
	}

	switch v := f.(type) {
	case figure.Rectangle:
		spec.Base, spec.Height = v.Base(), v.Height()
	case figure.Circle:
		spec.Radius = v.Radius()
	case figure.RightTriangle:
		spec.Base, spec.Height, spec.Sign = v.Base(), v.Height(), v.Sign()
		if v.Quadrant() != figure.QuadrantAuto {
			spec.Placement = &Placement{Mode: PlaceCentroid, Quadrant: v.Quadrant().String()}
		}
	case figure.Semicircle:
		spec.Radius = v.Radius()
		if v.Arc() != figure.ArcUp {
			spec.Placement = &Placement{Mode: PlaceCentroid, Arc: v.Arc().String()}
		}
	case figure.QuarterCircle:
		spec.Radius, spec.Sign = v.Radius(), v.Sign()
		if v.Quadrant() != figure.QuadrantAuto {
			spec.Placement = &Placement{Mode: PlaceCentroid, Quadrant: v.Quadrant().String()}
		}
	}
	return spec
}

// Definition describes the section's current figures.
func (s *Section) Definition() Definition {
	def := Definition{
		Name:        s.Name,
		Description: s.Description,
		Unit:        s.unit,
		Figures:     make([]FigureSpec, 0, len(s.figures)),
	}
	for _, f := range s.figures {
		def.Figures = append(def.Figures, SpecOf(f))
	}
	return def
}
