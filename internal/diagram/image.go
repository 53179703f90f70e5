package diagram

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/alexiusacademia/goinertia/internal/section"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotOptions controls the image rendering. Width and Height are in inches.
type PlotOptions struct {
	Title  string
	Width  float64
	Height float64
}

// DefaultPlotOptions matches the configuration defaults.
var DefaultPlotOptions = PlotOptions{Title: "Composite Section", Width: 8, Height: 6}

var (
	solidFill   = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	solidLine   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	holeFill    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	holeLine    = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	axis1Color  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	axis2Color  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	centroidClr = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

func (o PlotOptions) withDefaults() PlotOptions {
	if o.Title == "" {
		o.Title = DefaultPlotOptions.Title
	}
	if o.Width <= 0 {
		o.Width = DefaultPlotOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultPlotOptions.Height
	}
	return o
}

// NewSectionPlot draws the figure outlines (holes in red over a white
// fill), the figure centroids, the global centroid and both principal axes
// through it.
func NewSectionPlot(figs []figure.Figure, res section.Result, opts PlotOptions) (*plot.Plot, error) {
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = fmt.Sprintf("x (%s)", res.Unit)
	p.Y.Label.Text = fmt.Sprintf("y (%s)", res.Unit)
	p.Add(plotter.NewGrid())

	var all []figure.Point
	centroids := make(plotter.XYs, 0, len(figs))
	labels := make([]string, 0, len(figs))

	// Solids first so that holes are painted over them.
	for _, holes := range []bool{false, true} {
		for _, f := range figs {
			if f.IsHole() != holes {
				continue
			}
			pts := f.Outline(figure.DefaultSegments)
			all = append(all, pts...)

			poly, err := plotter.NewPolygon(toXYs(pts))
			if err != nil {
				return nil, err
			}
			poly.LineStyle.Width = vg.Points(1.5)
			if holes {
				poly.Color = holeFill
				poly.LineStyle.Color = holeLine
				poly.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			} else {
				poly.Color = solidFill
				poly.LineStyle.Color = solidLine
			}
			p.Add(poly)
		}
	}

	for i, f := range figs {
		c := f.Centroid()
		centroids = append(centroids, plotter.XY{X: c.X, Y: c.Y})
		labels = append(labels, strconv.Itoa(i+1))
	}
	if len(all) == 0 {
		return nil, section.ErrEmptyInput
	}

	lo, hi := figure.Bounds(all)
	reach := 0.6 * math.Hypot(hi.X-lo.X, hi.Y-lo.Y)

	for _, axis := range []struct {
		name  string
		angle float64
		clr   color.Color
	}{
		{"α1 axis", res.Alpha1, axis1Color},
		{"α2 axis", res.Alpha2, axis2Color},
	} {
		dx, dy := reach*math.Cos(axis.angle), reach*math.Sin(axis.angle)
		line, err := plotter.NewLine(plotter.XYs{
			{X: res.Xg - dx, Y: res.Yg - dy},
			{X: res.Xg + dx, Y: res.Yg + dy},
		})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = axis.clr
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)
		p.Legend.Add(axis.name, line)
	}

	figCentroids, err := plotter.NewScatter(centroids)
	if err != nil {
		return nil, err
	}
	figCentroids.GlyphStyle.Color = color.Black
	figCentroids.GlyphStyle.Radius = vg.Points(2.5)
	figCentroids.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(figCentroids)

	figLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: centroids, Labels: labels})
	if err != nil {
		return nil, err
	}
	figLabels.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(2)}
	p.Add(figLabels)

	global, err := plotter.NewScatter(plotter.XYs{{X: res.Xg, Y: res.Yg}})
	if err != nil {
		return nil, err
	}
	global.GlyphStyle.Color = centroidClr
	global.GlyphStyle.Radius = vg.Points(6)
	global.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(global)
	p.Legend.Add(fmt.Sprintf("G (%.2f, %.2f)", res.Xg, res.Yg), global)
	p.Legend.Top = true

	fitRange(p, lo, hi, opts.Width/opts.Height)
	return p, nil
}

// fitRange pads the data range and widens one axis so that both axes use
// roughly the same scale.
func fitRange(p *plot.Plot, lo, hi figure.Point, aspect float64) {
	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y
	pad := 0.1 * math.Max(spanX, spanY)
	spanX += 2 * pad
	spanY += 2 * pad

	if spanX/spanY < aspect {
		spanX = spanY * aspect
	} else {
		spanY = spanX / aspect
	}
	cx, cy := (lo.X+hi.X)/2, (lo.Y+hi.Y)/2
	p.X.Min, p.X.Max = cx-spanX/2, cx+spanX/2
	p.Y.Min, p.Y.Max = cy-spanY/2, cy+spanY/2
}

func toXYs(pts []figure.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

// ExportSectionDiagram saves the section plot to filename. The format
// follows the extension (png, svg, pdf, ...); unknown extensions get .png
// appended.
func ExportSectionDiagram(figs []figure.Figure, res section.Result, filename string, opts PlotOptions) error {
	opts = opts.withDefaults()
	p, err := NewSectionPlot(figs, res, opts)
	if err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	width := vg.Length(opts.Width) * vg.Inch
	height := vg.Length(opts.Height) * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// RenderPNG encodes the section plot as PNG.
func RenderPNG(figs []figure.Figure, res section.Result, opts PlotOptions) ([]byte, error) {
	opts = opts.withDefaults()
	p, err := NewSectionPlot(figs, res, opts)
	if err != nil {
		return nil, err
	}

	wt, err := p.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
