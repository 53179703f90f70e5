package diagram

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/guptarohit/asciigraph"
)

// CurveOptions sets the size of the rotation curve plot in characters.
type CurveOptions struct {
	Width  int
	Height int
}

// DefaultCurveOptions samples every 3 degrees.
var DefaultCurveOptions = CurveOptions{Width: 61, Height: 12}

// RotationSamples returns Iu and Iv for width angles evenly spread over
// [0°, 180°].
func RotationSamples(res section.Result, width int) (iu, iv []float64) {
	if width < 2 {
		width = 2
	}
	iu = make([]float64, width)
	iv = make([]float64, width)
	for i := 0; i < width; i++ {
		theta := math.Pi * float64(i) / float64(width-1)
		iu[i], iv[i], _ = res.Rotated(theta)
	}
	return iu, iv
}

// DrawRotationCurve plots the moments about axes rotated from 0° to 180°.
// Iu starts at Ix and Iv at Iy; the extremes of the two curves are I1 and I2.
func DrawRotationCurve(res section.Result, opts CurveOptions) string {
	if opts.Width <= 0 {
		opts.Width = DefaultCurveOptions.Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultCurveOptions.Height
	}

	iu, iv := RotationSamples(res, opts.Width)
	return asciigraph.PlotMany([][]float64{iu, iv},
		asciigraph.Height(opts.Height),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Iu and Iv for θ = 0..180° [%s]", res.InertiaUnit())),
	) + "\n"
}
