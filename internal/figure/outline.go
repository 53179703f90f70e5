package figure

import (
	"math"
	"sort"

	"github.com/twpayne/go-geom"
)

// DefaultSegments is the number of segments used for a full circle outline.
const DefaultSegments = 72

func (r Rectangle) Outline(int) []Point {
	c := r.center
	dx, dy := r.base/2, r.height/2
	return []Point{
		{X: c.X - dx, Y: c.Y - dy},
		{X: c.X + dx, Y: c.Y - dy},
		{X: c.X + dx, Y: c.Y + dy},
		{X: c.X - dx, Y: c.Y + dy},
		{X: c.X - dx, Y: c.Y - dy},
	}
}

func (c Circle) Outline(segments int) []Point {
	n := segmentsOrDefault(segments)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Point{X: c.center.X + c.radius*math.Cos(th), Y: c.center.Y + c.radius*math.Sin(th)})
	}
	return pts
}

func (t RightTriangle) Outline(int) []Point {
	sx, sy := quadrantForSign(t.quadrant, t.sign).Signs()
	fx, fy := float64(sx), float64(sy)
	v := Point{X: t.center.X - fx*t.base/3, Y: t.center.Y - fy*t.height/3}
	return []Point{
		v,
		{X: v.X + fx*t.base, Y: v.Y},
		{X: v.X, Y: v.Y + fy*t.height},
		v,
	}
}

func (s Semicircle) Outline(segments int) []Point {
	n := segmentsOrDefault(segments) / 2
	ux, uy := s.arc.unit()
	off := CentroidOffset * s.radius
	m := Point{X: s.center.X - ux*off, Y: s.center.Y - uy*off}

	// Sweep from the right-hand end of the diameter (seen along the arc
	// direction) through the apex to the other end.
	start := math.Atan2(uy, ux) - math.Pi/2
	pts := make([]Point, 0, n+2)
	for i := 0; i <= n; i++ {
		th := start + math.Pi*float64(i)/float64(n)
		pts = append(pts, Point{X: m.X + s.radius*math.Cos(th), Y: m.Y + s.radius*math.Sin(th)})
	}
	return append(pts, pts[0])
}

func (q QuarterCircle) Outline(segments int) []Point {
	n := segmentsOrDefault(segments) / 4
	sx, sy := quadrantForSign(q.quadrant, q.sign).Signs()
	fx, fy := float64(sx), float64(sy)
	off := CentroidOffset * q.radius
	o := Point{X: q.center.X - fx*off, Y: q.center.Y - fy*off}

	pts := make([]Point, 0, n+3)
	pts = append(pts, o)
	for i := 0; i <= n; i++ {
		th := (math.Pi / 2) * float64(i) / float64(n)
		pts = append(pts, Point{X: o.X + fx*q.radius*math.Cos(th), Y: o.Y + fy*q.radius*math.Sin(th)})
	}
	return append(pts, o)
}

func segmentsOrDefault(n int) int {
	if n < 8 {
		return DefaultSegments
	}
	return n
}

// Polygon returns the outline of f as a closed go-geom polygon.
func Polygon(f Figure, segments int) *geom.Polygon {
	pts := f.Outline(segments)
	flat := make([]float64, 0, 2*len(pts)+2)
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	if n := len(pts); n > 0 && pts[0] != pts[n-1] {
		flat = append(flat, pts[0].X, pts[0].Y)
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

// Contains reports whether p lies inside the polygon, by counting the
// crossings of the horizontal line through p left of p.
func Contains(pts []Point, p Point) bool {
	xs := intersectionsAtY(pts, p.Y)
	sort.Float64s(xs)
	left := 0
	for _, x := range xs {
		if x < p.X {
			left++
		}
	}
	return left%2 == 1
}

// intersectionsAtY finds all X coordinates where a horizontal line at y
// crosses the polygon edges.
func intersectionsAtY(pts []Point, y float64) []float64 {
	var xs []float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := pts[i], pts[j]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	return xs
}

// Bounds returns the bounding box of a set of points.
func Bounds(pts []Point) (lo, hi Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
