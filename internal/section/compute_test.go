package section

import (
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iBeam() []figure.Figure {
	return []figure.Figure{
		figure.NewRectangle(12, 1.2, figure.At(0, 6.9), figure.Named("top flange")),
		figure.NewRectangle(0.8, 12.6, figure.At(0, 0), figure.Named("web")),
		figure.NewRectangle(8, 1.2, figure.At(0, -6.9), figure.Named("bottom flange")),
	}
}

func angleSection(t *testing.T) []figure.Figure {
	t.Helper()
	tri, err := figure.NewRightTriangle(6, 3, -1, figure.At(4, 1))
	require.NoError(t, err)
	q, err := figure.NewQuarterCircle(2, 1, figure.At(-1, 3), figure.AsHole())
	require.NoError(t, err)
	return []figure.Figure{
		figure.NewRectangle(10, 1, figure.At(5, 0.5)),
		figure.NewRectangle(1, 8, figure.At(0.5, 5)),
		tri,
		figure.NewSemicircle(1.5, figure.At(8, 6)),
		q,
	}
}

func TestCompute_SingleRectangle(t *testing.T) {
	const b, h = 4.0, 10.0
	res, err := Compute([]figure.Figure{figure.NewRectangle(b, h)})
	require.NoError(t, err)

	ix := b * h * h * h / 12
	iy := h * b * b * b / 12
	assert.InDelta(t, 0, res.Xg, 1e-12)
	assert.InDelta(t, 0, res.Yg, 1e-12)
	assert.InDelta(t, b*h, res.Area, 1e-12)
	assert.InDelta(t, ix, res.Ix, 1e-9)
	assert.InDelta(t, iy, res.Iy, 1e-9)
	assert.InDelta(t, 0, res.Ixy, 1e-12)
	assert.InDelta(t, math.Max(ix, iy), res.I1, 1e-9)
	assert.InDelta(t, math.Min(ix, iy), res.I2, 1e-9)
	assert.Equal(t, DefaultUnit, res.Unit)
}

func TestCompute_IBeam(t *testing.T) {
	res, err := Compute(iBeam(), WithUnit("cm"))
	require.NoError(t, err)

	assert.InDelta(t, 34.08, res.Area, 1e-9)
	assert.InDelta(t, 0, res.Xg, 1e-12)
	assert.InDelta(t, 33.12/34.08, res.Yg, 1e-9)
	assert.InEpsilon(t, 1246, res.I1, 0.01)
	assert.InEpsilon(t, 224.5, res.I2, 0.01)
	assert.InDelta(t, 0, res.Ixy, 1e-9)
	assert.InDelta(t, math.Pi/2, res.Alpha1, 1e-12)
	assert.Equal(t, "cm", res.Unit)

	require.Len(t, res.Offsets, 3)
	assert.Equal(t, 2, res.Offsets[1].Index)
	assert.Equal(t, "web", res.Offsets[1].Name)
	assert.InDelta(t, 6.9-res.Yg, res.Offsets[0].A, 1e-12)
	assert.InDelta(t, 0, res.Offsets[0].B, 1e-12)
}

func TestCompute_HoleCancelsOneSolid(t *testing.T) {
	figs := []figure.Figure{
		figure.NewCircle(2, figure.At(0, 0)),
		figure.NewCircle(2, figure.At(10, 0)),
		figure.NewCircle(2, figure.At(10, 0), figure.AsHole()),
	}
	res, err := Compute(figs)
	require.NoError(t, err)

	single := figure.NewCircle(2).Area()
	assert.InDelta(t, single, res.Area, 1e-12)
	assert.InDelta(t, 0, res.Xg, 1e-9)
	assert.InDelta(t, figure.NewCircle(2).SelfIx(), res.Ix, 1e-9)

	require.Len(t, res.Offsets, 3)
	assert.Less(t, res.Offsets[2].Area, 0.0)
	assert.InDelta(t, 10, res.Offsets[2].B, 1e-9)
}

func TestCompute_Errors(t *testing.T) {
	_, err := Compute(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Compute([]figure.Figure{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Compute([]figure.Figure{
		figure.NewRectangle(2, 3, figure.At(1, 1)),
		figure.NewRectangle(2, 3, figure.At(5, 5), figure.AsHole()),
	})
	assert.ErrorIs(t, err, ErrDegenerateSection)
}

func TestCompute_PrincipalInvariants(t *testing.T) {
	cases := map[string][]figure.Figure{
		"i-beam": iBeam(),
		"angle":  angleSection(t),
		"offset": {
			figure.NewRectangle(3, 1, figure.At(2, 7)),
			figure.NewCircle(1, figure.At(-4, -2)),
		},
	}

	for name, figs := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := Compute(figs)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, res.I1, res.I2)
			assert.InDelta(t, res.Ix+res.Iy, res.I1+res.I2, 1e-9*math.Abs(res.Ix+res.Iy))
			assert.InDelta(t, math.Pi/2, res.Alpha2-res.Alpha1, 1e-12)
		})
	}
}

func TestCompute_PrincipalDirectionDiagonalizes(t *testing.T) {
	res, err := Compute(angleSection(t))
	require.NoError(t, err)
	require.NotZero(t, res.Ixy)

	// Rotating the moments to alpha1 gives I1 (or I2) and a vanishing
	// product of inertia.
	c, s := math.Cos(2*res.Alpha1), math.Sin(2*res.Alpha1)
	avg, half := (res.Ix+res.Iy)/2, (res.Ix-res.Iy)/2
	iu := avg + half*c - res.Ixy*s
	iuv := half*s + res.Ixy*c

	scale := math.Abs(res.I1)
	assert.InDelta(t, 0, iuv, 1e-9*scale)
	assert.True(t, math.Abs(iu-res.I1) < 1e-9*scale || math.Abs(iu-res.I2) < 1e-9*scale)
}

func TestCompute_EqualMomentsFallback(t *testing.T) {
	res, err := Compute([]figure.Figure{figure.NewCircle(3, figure.At(2, 2))})
	require.NoError(t, err)

	assert.InDelta(t, math.Pi/4, res.Alpha1, 1e-15)
	assert.InDelta(t, 3*math.Pi/4, res.Alpha2, 1e-15)
	assert.InDelta(t, res.I1, res.I2, 1e-9)
}

func TestCompute_Idempotent(t *testing.T) {
	sec := New("mm")
	sec.Add(angleSection(t)...)

	first, err := sec.Compute()
	require.NoError(t, err)
	second, err := sec.Compute()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "mm", first.Unit)
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	figs := iBeam()
	before := make([]figure.Figure, len(figs))
	copy(before, figs)

	_, err := Compute(figs)
	require.NoError(t, err)
	assert.Equal(t, before, figs)
}

func TestCompute_ConcurrentSections(t *testing.T) {
	want, err := Compute(iBeam())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sec := New("")
			sec.Add(iBeam()...)
			results[i], _ = sec.Compute(WithUnit(DefaultUnit))
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

type recordingTracer struct {
	calls []string
}

func (r *recordingTracer) Centroid(CentroidStage)   { r.calls = append(r.calls, "centroid") }
func (r *recordingTracer) Offsets(rows []OffsetRow) { r.calls = append(r.calls, "offsets"); rows[0].A = 1e9 }
func (r *recordingTracer) Transfer(TransferStage)   { r.calls = append(r.calls, "transfer") }
func (r *recordingTracer) Principal(PrincipalStage) { r.calls = append(r.calls, "principal") }

func TestCompute_TracerIsObservational(t *testing.T) {
	quiet, err := Compute(angleSection(t))
	require.NoError(t, err)

	rec := &recordingTracer{}
	var buf bytes.Buffer
	traced, err := Compute(angleSection(t),
		WithTracer(MultiTracer{rec, NewTableTracer(&buf)}),
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"centroid", "offsets", "transfer", "principal"}, rec.calls)
	assert.Equal(t, quiet, traced)
	assert.NotEmpty(t, buf.String())
}

func TestCompute_TracerNotCalledOnError(t *testing.T) {
	rec := &recordingTracer{}
	_, err := Compute([]figure.Figure{
		figure.NewCircle(1),
		figure.NewCircle(1, figure.AsHole()),
	}, WithTracer(rec))

	require.ErrorIs(t, err, ErrDegenerateSection)
	assert.Empty(t, rec.calls)
}

func TestPrincipal(t *testing.T) {
	p := Principal(300, 100, 0)
	assert.InDelta(t, 300, p.I1, 1e-12)
	assert.InDelta(t, 100, p.I2, 1e-12)
	assert.InDelta(t, math.Pi/2, p.Alpha1, 1e-12)

	p = Principal(100, 300, 0)
	assert.InDelta(t, 300, p.I1, 1e-12)
	assert.InDelta(t, 0, p.Alpha1, 1e-12)

	p = Principal(200, 200, 50)
	assert.InDelta(t, 250, p.I1, 1e-12)
	assert.InDelta(t, 150, p.I2, 1e-12)
	assert.InDelta(t, math.Pi/4, p.Alpha1, 1e-12)
}
