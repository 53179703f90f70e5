package section

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/rs/zerolog"
)

const (
	// AreaTolerance is the smallest total signed area accepted.
	AreaTolerance = 1e-12

	// AngleTolerance is the |Iy - Ix| below which the principal direction is
	// taken as 45°.
	AngleTolerance = 1e-12
)

type options struct {
	unit   string
	tracer Tracer
	logger zerolog.Logger
}

// Option configures a computation.
type Option func(*options)

// WithUnit sets the length unit label attached to the result.
func WithUnit(unit string) Option {
	return func(o *options) {
		if unit != "" {
			o.unit = unit
		}
	}
}

// WithTracer registers an observer notified after each stage.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithLogger sets the logger receiving per-figure debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Compute calculates the area, centroid, second moments and principal axes
// of the composite section made of figs. It does not modify figs.
//
// The computation runs in four stages:
//  1. global centroid from the signed areas
//  2. offsets a = yi - Yg and b = xi - Xg of every figure
//  3. Steiner transfer of every figure's moments to the global centroid
//  4. principal moments and directions of the resulting tensor
func Compute(figs []figure.Figure, opts ...Option) (Result, error) {
	o := options{
		unit:   DefaultUnit,
		tracer: NopTracer{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(figs) == 0 {
		return Result{}, ErrEmptyInput
	}

	o.logger.Debug().Int("figures", len(figs)).Msg("starting section computation")

	// Stage 1: global centroid
	centroid := CentroidStage{Unit: o.unit, Rows: make([]CentroidRow, 0, len(figs))}
	for i, f := range figs {
		a := f.Area()
		c := f.Centroid()
		row := CentroidRow{
			Index: i + 1,
			Name:  f.Name(),
			Area:  a,
			X:     c.X,
			Y:     c.Y,
			AX:    a * c.X,
			AY:    a * c.Y,
		}
		centroid.Rows = append(centroid.Rows, row)
		centroid.SumA += row.Area
		centroid.SumAX += row.AX
		centroid.SumAY += row.AY

		o.logger.Debug().
			Int("figure", row.Index).
			Str("name", row.Name).
			Float64("area", a).
			Float64("x", c.X).
			Float64("y", c.Y).
			Msg("figure area")
	}

	if math.Abs(centroid.SumA) < AreaTolerance {
		return Result{}, fmt.Errorf("%w (A = %g)", ErrDegenerateSection, centroid.SumA)
	}

	xg := centroid.SumAX / centroid.SumA
	yg := centroid.SumAY / centroid.SumA
	centroid.Xg, centroid.Yg = xg, yg
	o.tracer.Centroid(centroid)

	// Stage 2: offsets of every figure centroid to the global centroid
	offsets := make([]OffsetRow, 0, len(figs))
	for i, f := range figs {
		c := f.Centroid()
		row := OffsetRow{
			Index: i + 1,
			Name:  f.Name(),
			Area:  f.Area(),
			Xi:    c.X,
			Yi:    c.Y,
			A:     c.Y - yg,
			B:     c.X - xg,
		}
		offsets = append(offsets, row)

		o.logger.Debug().
			Int("figure", row.Index).
			Float64("a", row.A).
			Float64("b", row.B).
			Msg("figure offsets")
	}
	o.tracer.Offsets(copyOffsets(offsets))

	// Stage 3: Steiner transfer
	transfer := TransferStage{Unit: o.unit, Rows: make([]TransferRow, 0, len(figs))}
	for i, f := range figs {
		off := offsets[i]
		row := TransferRow{
			Index:   off.Index,
			Area:    off.Area,
			A:       off.A,
			B:       off.B,
			SelfIx:  f.SelfIx(),
			SelfIy:  f.SelfIy(),
			SelfIxy: f.SelfIxy(),
		}
		row.Ix = row.SelfIx + row.Area*row.A*row.A
		row.Iy = row.SelfIy + row.Area*row.B*row.B
		row.Ixy = row.SelfIxy + row.Area*row.A*row.B

		transfer.Rows = append(transfer.Rows, row)
		transfer.Ix += row.Ix
		transfer.Iy += row.Iy
		transfer.Ixy += row.Ixy

		o.logger.Debug().
			Int("figure", row.Index).
			Float64("ix", row.Ix).
			Float64("iy", row.Iy).
			Float64("ixy", row.Ixy).
			Msg("figure transferred moments")
	}
	o.tracer.Transfer(transfer)

	// Stage 4: principal axes
	principal := Principal(transfer.Ix, transfer.Iy, transfer.Ixy)
	o.tracer.Principal(principal)

	return Result{
		Unit:    o.unit,
		Area:    centroid.SumA,
		Xg:      xg,
		Yg:      yg,
		Ix:      transfer.Ix,
		Iy:      transfer.Iy,
		Ixy:     transfer.Ixy,
		I1:      principal.I1,
		I2:      principal.I2,
		Alpha1:  principal.Alpha1,
		Alpha2:  principal.Alpha2,
		Offsets: offsets,
	}, nil
}

// Principal diagonalizes the 2x2 inertia tensor built from Ix, Iy and Ixy.
// I1 is always the larger moment. When Ix and Iy are equal within
// AngleTolerance, alpha1 is fixed at π/4.
func Principal(ix, iy, ixy float64) PrincipalStage {
	avg := (ix + iy) / 2
	r := math.Sqrt(math.Pow((ix-iy)/2, 2) + ixy*ixy)

	var alpha1 float64
	if math.Abs(iy-ix) < AngleTolerance {
		alpha1 = math.Pi / 4
	} else {
		alpha1 = 0.5 * math.Atan2(2*ixy, iy-ix)
	}

	return PrincipalStage{
		I1:     avg + r,
		I2:     avg - r,
		Alpha1: alpha1,
		Alpha2: alpha1 + math.Pi/2,
	}
}

func copyOffsets(rows []OffsetRow) []OffsetRow {
	out := make([]OffsetRow, len(rows))
	copy(out, rows)
	return out
}
