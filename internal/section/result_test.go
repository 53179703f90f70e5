package section

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_DerivedQuantities(t *testing.T) {
	res, err := Compute([]figure.Figure{figure.NewRectangle(6, 12)}, WithUnit("mm"))
	require.NoError(t, err)

	assert.Equal(t, "mm²", res.AreaUnit())
	assert.Equal(t, "mm⁴", res.InertiaUnit())
	assert.InDelta(t, 12/math.Sqrt(12), res.RadiusX(), 1e-12)
	assert.InDelta(t, 6/math.Sqrt(12), res.RadiusY(), 1e-12)
	assert.InDelta(t, 90, res.Alpha1Deg(), 1e-9)
	assert.InDelta(t, 180, res.Alpha2Deg(), 1e-9)
}

func TestResult_ClockwiseAngles(t *testing.T) {
	res, err := Compute(iBeam())
	require.NoError(t, err)

	cw1, cw2 := res.ClockwiseAngles()
	assert.InDelta(t, 0, cw1, 1e-9)
	assert.InDelta(t, 90, cw2, 1e-9)

	a1, a2 := res.Angles(AnglesClockwise)
	assert.Equal(t, cw1, a1)
	assert.Equal(t, cw2, a2)

	a1, a2 = res.Angles(AnglesMath)
	assert.Equal(t, res.Alpha1Deg(), a1)
	assert.Equal(t, res.Alpha2Deg(), a2)

	res, err = Compute(angleSection(t))
	require.NoError(t, err)
	cw1, cw2 = res.ClockwiseAngles()
	assert.Greater(t, cw1, -90.0)
	assert.LessOrEqual(t, cw2, 90.0)
	assert.InDelta(t, 90, math.Abs(cw2-cw1), 1e-9)
}

func TestResult_MarshalJSON(t *testing.T) {
	res, err := Compute(iBeam(), WithUnit("cm"))
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	for _, key := range []string{
		"unit", "area", "xg", "yg", "ix", "iy", "ixy", "i1", "i2",
		"alpha1_rad", "alpha2_rad", "alpha1_deg", "alpha2_deg",
		"alpha1_deg_clockwise", "alpha2_deg_clockwise", "offsets",
	} {
		assert.Contains(t, got, key)
	}
	assert.Equal(t, "cm⁴", got["inertia_unit"])
	assert.InDelta(t, 90, got["alpha1_deg"], 1e-9)
	assert.Len(t, got["offsets"], 3)
}

func TestResult_Summary(t *testing.T) {
	res, err := Compute(iBeam(), WithUnit("cm"))
	require.NoError(t, err)

	s := res.Summary()
	assert.Contains(t, s, "COMPOSITE SECTION SUMMARY")
	assert.Contains(t, s, "Total area: 34.0800 cm²")
	assert.Contains(t, s, "α1=90.00°")
}

func TestTableTracer(t *testing.T) {
	var buf bytes.Buffer
	_, err := Compute(iBeam(), WithUnit("cm"), WithTracer(NewTableTracer(&buf)))
	require.NoError(t, err)

	out := buf.String()
	for _, heading := range []string{
		"STEP 1: GLOBAL CENTROID",
		"STEP 2: OFFSETS a AND b TO THE CENTROID",
		"STEP 3: STEINER TRANSFER",
		"STEP 4: PRINCIPAL AXES",
	} {
		assert.Contains(t, out, heading)
	}
	assert.Contains(t, out, "34.0800")
	assert.Contains(t, out, "(cm⁴)")
	assert.Contains(t, out, "bottom flange")
}

func TestResult_Rotated(t *testing.T) {
	res, err := Compute(angleSection(t))
	require.NoError(t, err)

	iu, iv, iuv := res.Rotated(0)
	assert.InDelta(t, res.Ix, iu, 1e-9)
	assert.InDelta(t, res.Iy, iv, 1e-9)
	assert.InDelta(t, res.Ixy, iuv, 1e-9)

	scale := math.Abs(res.I1)
	for _, alpha := range []float64{res.Alpha1, res.Alpha2} {
		iu, iv, iuv = res.Rotated(alpha)
		assert.InDelta(t, 0, iuv, 1e-9*scale)
		assert.InDelta(t, res.I1, math.Max(iu, iv), 1e-9*scale)
		assert.InDelta(t, res.I2, math.Min(iu, iv), 1e-9*scale)
	}

	iu, iv, _ = res.Rotated(0.3)
	assert.InDelta(t, res.Ix+res.Iy, iu+iv, 1e-9*scale)
}
