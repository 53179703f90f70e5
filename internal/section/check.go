package section

import (
	"math"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/twpayne/go-geom/xy"
)

// OutlineCheck compares the closed-form area and centroid of a result with
// the values integrated over the polygonal figure outlines.
type OutlineCheck struct {
	Area float64 `json:"area"`
	Xg   float64 `json:"xg"`
	Yg   float64 `json:"yg"`

	// AreaDeviation is relative to the closed-form area.
	AreaDeviation float64 `json:"area_deviation"`
	// CentroidShift is the distance between both centroids.
	CentroidShift float64 `json:"centroid_shift"`
}

// CheckOutlines integrates the signed outline polygons of figs with
// segments per full circle. Curved outlines are inscribed polygons, so a
// small deviation is expected for circular figures.
func CheckOutlines(figs []figure.Figure, res Result, segments int) (OutlineCheck, error) {
	if len(figs) == 0 {
		return OutlineCheck{}, ErrEmptyInput
	}

	var sumA, sumAX, sumAY float64
	for _, f := range figs {
		poly := figure.Polygon(f, segments)
		a := poly.Area()
		c := xy.PolygonsCentroid(poly)
		if f.IsHole() {
			a = -a
		}
		sumA += a
		sumAX += a * c.X()
		sumAY += a * c.Y()
	}
	if math.Abs(sumA) < AreaTolerance {
		return OutlineCheck{}, ErrDegenerateSection
	}

	chk := OutlineCheck{
		Area: sumA,
		Xg:   sumAX / sumA,
		Yg:   sumAY / sumA,
	}
	chk.AreaDeviation = (chk.Area - res.Area) / res.Area
	chk.CentroidShift = math.Hypot(chk.Xg-res.Xg, chk.Yg-res.Yg)
	return chk, nil
}
