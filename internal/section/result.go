package section

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// OffsetRow records the distances used in the Steiner transfer of one
// figure: a = yi - Yg and b = xi - Xg. Holes are included.
type OffsetRow struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Area  float64 `json:"area"`
	Xi    float64 `json:"xi"`
	Yi    float64 `json:"yi"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
}

// Result is the outcome of one section computation. It is a value snapshot
// with no link back to the figures it was computed from; consumers must
// treat it as read-only.
type Result struct {
	Unit string `json:"unit"`

	// Total signed area and global centroid
	Area float64 `json:"area"`
	Xg   float64 `json:"xg"`
	Yg   float64 `json:"yg"`

	// Second moments about global-aligned axes through (Xg, Yg)
	Ix  float64 `json:"ix"`
	Iy  float64 `json:"iy"`
	Ixy float64 `json:"ixy"`

	// Principal moments (I1 >= I2) and directions in radians
	I1     float64 `json:"i1"`
	I2     float64 `json:"i2"`
	Alpha1 float64 `json:"alpha1_rad"`
	Alpha2 float64 `json:"alpha2_rad"`

	Offsets []OffsetRow `json:"offsets"`
}

// Alpha1Deg returns Alpha1 in degrees.
func (r Result) Alpha1Deg() float64 { return degrees(r.Alpha1) }

// Alpha2Deg returns Alpha2 in degrees.
func (r Result) Alpha2Deg() float64 { return degrees(r.Alpha2) }

// AreaUnit returns the label of area quantities, e.g. "cm²".
func (r Result) AreaUnit() string { return r.Unit + "²" }

// InertiaUnit returns the label of second moments, e.g. "cm⁴".
func (r Result) InertiaUnit() string { return r.Unit + "⁴" }

// RadiusX returns the radius of gyration about the centroidal x axis.
func (r Result) RadiusX() float64 { return math.Sqrt(r.Ix / r.Area) }

// RadiusY returns the radius of gyration about the centroidal y axis.
func (r Result) RadiusY() float64 { return math.Sqrt(r.Iy / r.Area) }

// Rotated returns the second moments about centroidal axes u, v rotated
// counter-clockwise by theta radians from x, y. The product iuv vanishes
// at Alpha1 and Alpha2.
func (r Result) Rotated(theta float64) (iu, iv, iuv float64) {
	avg, half := (r.Ix+r.Iy)/2, (r.Ix-r.Iy)/2
	c, s := math.Cos(2*theta), math.Sin(2*theta)
	iu = avg + half*c - r.Ixy*s
	iv = avg - half*c + r.Ixy*s
	iuv = half*s + r.Ixy*c
	return iu, iv, iuv
}

// ClockwiseAngles returns the principal directions in degrees using the
// convention of hand-calculation forms: angles are positive clockwise,
// alpha2 is the axis of the smaller moment I2 and alpha1 = alpha2 - 90°.
// Both are normalized to (-90°, 90°].
func (r Result) ClockwiseAngles() (alpha1, alpha2 float64) {
	theta := 0.5 * math.Atan2(-2*r.Ixy, r.Iy-r.Ix)
	alpha2 = normalizeHalfTurn(-degrees(theta))
	alpha1 = normalizeHalfTurn(alpha2 - 90)
	return alpha1, alpha2
}

// Angles returns both principal directions in degrees for the named
// convention: "clockwise" or "math" (counter-clockwise, the default).
func (r Result) Angles(convention string) (alpha1, alpha2 float64) {
	if convention == AnglesClockwise {
		return r.ClockwiseAngles()
	}
	return r.Alpha1Deg(), r.Alpha2Deg()
}

// Angle conventions accepted by Result.Angles.
const (
	AnglesMath      = "math"
	AnglesClockwise = "clockwise"
)

// Summary returns a short text block of the main quantities.
func (r Result) Summary() string {
	var sb strings.Builder
	u := r.Unit

	sb.WriteString("═══════════════════════════════════════════════════════════════\n")
	sb.WriteString("  COMPOSITE SECTION SUMMARY\n")
	sb.WriteString("═══════════════════════════════════════════════════════════════\n")
	sb.WriteString(fmt.Sprintf("  Total area: %.4f %s\n", r.Area, r.AreaUnit()))
	sb.WriteString(fmt.Sprintf("  Centroid:   Xg=%.4f %s | Yg=%.4f %s\n", r.Xg, u, r.Yg, u))
	sb.WriteString(fmt.Sprintf("  Ix=%.4f %s | Iy=%.4f %s | Ixy=%.4f %s\n", r.Ix, r.InertiaUnit(), r.Iy, r.InertiaUnit(), r.Ixy, r.InertiaUnit()))
	sb.WriteString(fmt.Sprintf("  I1=%.4f %s | I2=%.4f %s\n", r.I1, r.InertiaUnit(), r.I2, r.InertiaUnit()))
	sb.WriteString(fmt.Sprintf("  α1=%.2f° | α2=%.2f°\n", r.Alpha1Deg(), r.Alpha2Deg()))

	return sb.String()
}

// MarshalJSON adds the derived quantities to the encoded result.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	cw1, cw2 := r.ClockwiseAngles()
	return json.Marshal(struct {
		plain
		Alpha1Deg          float64 `json:"alpha1_deg"`
		Alpha2Deg          float64 `json:"alpha2_deg"`
		Alpha1DegClockwise float64 `json:"alpha1_deg_clockwise"`
		Alpha2DegClockwise float64 `json:"alpha2_deg_clockwise"`
		AreaUnit           string  `json:"area_unit"`
		InertiaUnit        string  `json:"inertia_unit"`
	}{
		plain:              plain(r),
		Alpha1Deg:          r.Alpha1Deg(),
		Alpha2Deg:          r.Alpha2Deg(),
		Alpha1DegClockwise: cw1,
		Alpha2DegClockwise: cw2,
		AreaUnit:           r.AreaUnit(),
		InertiaUnit:        r.InertiaUnit(),
	})
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func normalizeHalfTurn(deg float64) float64 {
	for deg <= -90 {
		deg += 180
	}
	for deg > 90 {
		deg -= 180
	}
	return deg
}
