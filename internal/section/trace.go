package section

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// CentroidRow is one figure's contribution to the global centroid.
type CentroidRow struct {
	Index int
	Name  string
	Area  float64
	X     float64
	Y     float64
	AX    float64
	AY    float64
}

// CentroidStage is reported once the global centroid is known.
type CentroidStage struct {
	Unit  string
	Rows  []CentroidRow
	SumA  float64
	SumAX float64
	SumAY float64
	Xg    float64
	Yg    float64
}

// TransferRow is one figure's Steiner transfer.
type TransferRow struct {
	Index   int
	Area    float64
	A       float64
	B       float64
	SelfIx  float64
	SelfIy  float64
	SelfIxy float64
	Ix      float64
	Iy      float64
	Ixy     float64
}

// TransferStage is reported once the global moments are summed.
type TransferStage struct {
	Unit string
	Rows []TransferRow
	Ix   float64
	Iy   float64
	Ixy  float64
}

// PrincipalStage holds the principal moments and directions (radians).
type PrincipalStage struct {
	I1     float64
	I2     float64
	Alpha1 float64
	Alpha2 float64
}

// Tracer observes a computation at its four checkpoints. A tracer only
// receives copies of intermediate values and cannot influence the result.
type Tracer interface {
	Centroid(CentroidStage)
	Offsets([]OffsetRow)
	Transfer(TransferStage)
	Principal(PrincipalStage)
}

// NopTracer ignores every checkpoint.
type NopTracer struct{}

func (NopTracer) Centroid(CentroidStage)   {}
func (NopTracer) Offsets([]OffsetRow)      {}
func (NopTracer) Transfer(TransferStage)   {}
func (NopTracer) Principal(PrincipalStage) {}

// MultiTracer forwards every checkpoint to each of its tracers in order.
type MultiTracer []Tracer

func (m MultiTracer) Centroid(s CentroidStage) {
	for _, t := range m {
		t.Centroid(s)
	}
}

func (m MultiTracer) Offsets(rows []OffsetRow) {
	for _, t := range m {
		t.Offsets(rows)
	}
}

func (m MultiTracer) Transfer(s TransferStage) {
	for _, t := range m {
		t.Transfer(s)
	}
}

func (m MultiTracer) Principal(s PrincipalStage) {
	for _, t := range m {
		t.Principal(s)
	}
}

const traceRule = "───────────────────────────────────────────────────────────────"

// TableTracer prints a step-by-step tabular trace of the computation.
type TableTracer struct {
	w    io.Writer
	unit string
}

// NewTableTracer creates a tracer writing to w (stdout when nil).
func NewTableTracer(w io.Writer) *TableTracer {
	if w == nil {
		w = os.Stdout
	}
	return &TableTracer{w: w}
}

func (t *TableTracer) heading(title string) {
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, title)
	fmt.Fprintln(t.w, traceRule)
}

func (t *TableTracer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(t.w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func (t *TableTracer) Centroid(s CentroidStage) {
	t.unit = s.Unit
	t.heading("STEP 1: GLOBAL CENTROID")

	w := t.table()
	fmt.Fprintf(w, "Fig\tType\tA\tx\ty\tA·x\tA·y\t\n")
	for _, r := range s.Rows {
		fmt.Fprintf(w, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n", r.Index, r.Name, r.Area, r.X, r.Y, r.AX, r.AY)
	}
	fmt.Fprintf(w, "TOTAL\t\t%.4f\t\t\t%.4f\t%.4f\t\n", s.SumA, s.SumAX, s.SumAY)
	w.Flush()

	fmt.Fprintf(t.w, "  Centroid: Xg = %.4f | Yg = %.4f (%s)\n", s.Xg, s.Yg, s.Unit)
}

func (t *TableTracer) Offsets(rows []OffsetRow) {
	t.heading("STEP 2: OFFSETS a AND b TO THE CENTROID")

	w := t.table()
	fmt.Fprintf(w, "Fig\txi\tyi\ta=yi-Yg\tb=xi-Xg\t\n")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t\n", r.Index, r.Xi, r.Yi, r.A, r.B)
	}
	w.Flush()
}

func (t *TableTracer) Transfer(s TransferStage) {
	t.heading("STEP 3: STEINER TRANSFER (GLOBAL Ix, Iy, Ixy)")
	fmt.Fprintln(t.w, "  Ix = Ix' + A·a² | Iy = Iy' + A·b² | Ixy = Ixy' + A·a·b")
	fmt.Fprintln(t.w)

	w := t.table()
	fmt.Fprintf(w, "Fig\tA\ta\tb\tIx'\tA·a²\tIx_i\tIy_i\tIxy_i\t\n")
	for _, r := range s.Rows {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			r.Index, r.Area, r.A, r.B, r.SelfIx, r.Area*r.A*r.A, r.Ix, r.Iy, r.Ixy)
	}
	w.Flush()

	fmt.Fprintf(t.w, "  Ix = %.4f | Iy = %.4f | Ixy = %.4f (%s⁴)\n", s.Ix, s.Iy, s.Ixy, s.Unit)
}

func (t *TableTracer) Principal(s PrincipalStage) {
	t.heading("STEP 4: PRINCIPAL AXES")
	fmt.Fprintf(t.w, "  I1 = %.4f | I2 = %.4f (%s⁴)\n", s.I1, s.I2, t.unit)
	fmt.Fprintf(t.w, "  α1 = %.6f rad (%.2f°)\n", s.Alpha1, degrees(s.Alpha1))
	fmt.Fprintf(t.w, "  α2 = %.6f rad (%.2f°)\n", s.Alpha2, degrees(s.Alpha2))
}
