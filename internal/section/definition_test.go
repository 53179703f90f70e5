package section

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_YAML(t *testing.T) {
	def, err := LoadFromFile(filepath.Join("testdata", "ibeam.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "I-beam", def.Name)
	assert.Equal(t, "cm", def.Unit)
	require.Len(t, def.Figures, 3)
	assert.Equal(t, "top flange", def.Figures[0].Name)

	sec, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, sec.Len())

	res, err := sec.Compute()
	require.NoError(t, err)
	assert.InEpsilon(t, 1246, res.I1, 0.01)
	assert.InEpsilon(t, 224.5, res.I2, 0.01)
}

func TestLoadFromFile_JSONReferencePlacement(t *testing.T) {
	def, err := LoadFromFile(filepath.Join("testdata", "plate_with_holes.json"))
	require.NoError(t, err)

	sec, err := def.Build()
	require.NoError(t, err)
	require.Equal(t, 5, sec.Len())
	assert.Equal(t, "mm", sec.Unit())

	figs := sec.Figures()
	assert.Equal(t, figure.Point{X: 100, Y: 50}, figs[0].Centroid())
	assert.True(t, figs[1].IsHole())

	notch, ok := figs[2].(figure.QuarterCircle)
	require.True(t, ok)
	assert.Equal(t, figure.QuadrantSW.IxySign(), notch.Sign())
	assert.Less(t, notch.Centroid().X, 200.0)

	chamfer, ok := figs[3].(figure.RightTriangle)
	require.True(t, ok)
	assert.Equal(t, 1, chamfer.Sign())
	assert.InDelta(t, 20.0/3, chamfer.Centroid().X, 1e-12)

	tab := figs[4].Centroid()
	assert.Less(t, tab.Y, 0.0)

	res, err := sec.Compute()
	require.NoError(t, err)
	assert.Greater(t, res.Area, 0.0)
	assert.Less(t, res.Area, 200.0*100+figure.NewSemicircle(25).Area())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		content string
	}{
		{"bad json", "json", `{"figures": [`},
		{"bad yaml", "yaml", "figures: [type: : :"},
		{"unknown format", "toml", `name = "x"`},
		{"unknown type", "json", `{"figures": [{"type": "hexagon", "radius": 1}]}`},
		{"missing height", "json", `{"figures": [{"type": "rectangle", "base": 1}]}`},
		{"negative radius", "yaml", "figures:\n  - type: circle\n    radius: -1\n"},
		{"bad sign", "json", `{"figures": [{"type": "right_triangle", "base": 1, "height": 1, "sign": 3}]}`},
		{"bad mode", "json", `{"figures": [{"type": "circle", "radius": 1, "placement": {"mode": "corner"}}]}`},
		{"nan radius", "yaml", "figures:\n  - type: circle\n    radius: .nan\n"},
		{"infinite base", "yaml", "figures:\n  - type: rectangle\n    base: .inf\n    height: 1\n"},
		{"nan height", "yaml", "figures:\n  - type: right_triangle\n    base: 1\n    height: .nan\n"},
		{"infinite x", "yaml", "figures:\n  - type: circle\n    radius: 1\n    x: -.inf\n"},
		{"nan y", "yaml", "figures:\n  - type: circle\n    radius: 1\n    y: .nan\n"},
		{"infinite reference", "yaml", "figures:\n  - type: circle\n    radius: 1\n    placement: {mode: reference, x0: .inf}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.content), tc.format)
			assert.Error(t, err)
		})
	}
}

func TestDecode_ValidationErrorType(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"figures": [{"type": "circle"}]}`), "json")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "figure 1")
	assert.NotErrorIs(t, err, figure.ErrInvalidParameter)

	_, err = Decode(strings.NewReader(`{"figures": [{"type": "hexagon", "radius": 1}]}`), "json")
	require.ErrorAs(t, err, &verr)
	assert.NotErrorIs(t, err, figure.ErrInvalidParameter)
}

func TestDecode_BadSignKeepsCause(t *testing.T) {
	_, err := Decode(strings.NewReader(
		`{"figures": [{"type": "right_triangle", "base": 1, "height": 1, "sign": 3}]}`), "json")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, figure.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "figure 1")
}

func TestBuild_InvalidPlacement(t *testing.T) {
	def := Definition{Figures: []FigureSpec{{
		Type:      "quarter_circle",
		Radius:    2,
		Placement: &Placement{Mode: PlaceReference},
	}}}
	_, err := def.Build()
	assert.ErrorIs(t, err, figure.ErrInvalidParameter)

	def.Figures[0].Placement.Quadrant = "north"
	_, err = def.Build()
	assert.ErrorIs(t, err, figure.ErrInvalidParameter)
}

func TestBuild_DefaultSigns(t *testing.T) {
	def := Definition{Figures: []FigureSpec{
		{Type: "tri", Base: 3, Height: 2},
		{Type: "quarter", Radius: 2},
	}}
	sec, err := def.Build()
	require.NoError(t, err)

	figs := sec.Figures()
	assert.Equal(t, figure.DefaultTriangleSign, figs[0].(figure.RightTriangle).Sign())
	assert.Equal(t, figure.DefaultQuarterCircleSign, figs[1].(figure.QuarterCircle).Sign())
	assert.Equal(t, DefaultUnit, sec.Unit())
}

func TestDefinitionRoundTrip(t *testing.T) {
	sec := New("mm")
	sec.Name = "mixed"
	sec.Add(angleSection(t)...)

	def := sec.Definition()
	require.Len(t, def.Figures, 5)
	assert.Equal(t, "right_triangle", def.Figures[2].Type)
	assert.Equal(t, -1, def.Figures[2].Sign)
	assert.True(t, def.Figures[4].Hole)

	rebuilt, err := def.Build()
	require.NoError(t, err)

	want, err := sec.Compute()
	require.NoError(t, err)
	got, err := rebuilt.Compute()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSpecOf_KeepsOrientation(t *testing.T) {
	q, err := figure.QuarterCircleAtCenter(2, figure.Point{X: 1, Y: 1}, figure.QuadrantNW)
	require.NoError(t, err)
	semi := figure.SemicircleOnDiameter(3, figure.Point{}, figure.ArcLeft)

	qs := SpecOf(q)
	require.NotNil(t, qs.Placement)
	assert.Equal(t, "NW", qs.Placement.Quadrant)
	assert.Equal(t, PlaceCentroid, qs.Placement.Mode)

	ss := SpecOf(semi)
	require.NotNil(t, ss.Placement)
	assert.Equal(t, "left", ss.Placement.Arc)

	back, err := qs.Figure()
	require.NoError(t, err)
	assert.Equal(t, q.Centroid(), back.Centroid())
	assert.Equal(t, q.Outline(8), back.Outline(8))

	back, err = ss.Figure()
	require.NoError(t, err)
	assert.Equal(t, semi.Outline(8), back.Outline(8))

	assert.Nil(t, SpecOf(figure.NewCircle(1)).Placement)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
