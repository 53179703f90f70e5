// Package report renders a section result as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/phpdave11/gofpdf"
)

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Moments of Inertia - Report"

// Options controls the report header and content.
type Options struct {
	Title   string
	Author  string
	Section string // section name printed under the title
	Angles  string // section.AnglesMath or section.AnglesClockwise

	// Diagram is an optional PNG image placed above the results.
	Diagram []byte

	// Date defaults to the current time.
	Date time.Time
}

const (
	pageMargin = 15.0
	lineHeight = 6.0
)

// Write renders res as an A4 PDF to w.
func Write(w io.Writer, res section.Result, opts Options) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(opts.Title, true)
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if opts.Section != "" {
		pdf.Cell(0, lineHeight, tr("Section: "+opts.Section))
		pdf.Ln(lineHeight)
	}
	if opts.Author != "" {
		pdf.Cell(0, lineHeight, tr("Author: "+opts.Author))
		pdf.Ln(lineHeight)
	}
	pdf.Cell(0, lineHeight, fmt.Sprintf("Generated: %s", opts.Date.Format("2006-01-02 15:04:05")))
	pdf.Ln(lineHeight + 4)

	if len(opts.Diagram) > 0 {
		if err := placeDiagram(pdf, opts.Diagram); err != nil {
			return err
		}
	}

	writeResults(pdf, tr, res, opts.Angles)
	writeOffsets(pdf, tr, res)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return pdf.Output(w)
}

// Bytes renders the report into memory.
func Bytes(res section.Result, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, res, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func placeDiagram(pdf *gofpdf.Fpdf, png []byte) error {
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	info := pdf.RegisterImageOptionsReader("diagram", imgOpts, bytes.NewReader(png))
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("invalid diagram image: %w", err)
	}

	pageW, pageH := pdf.GetPageSize()
	width := pageW - 2*pageMargin
	height := width * info.Height() / info.Width()
	if limit := pageH / 2; height > limit {
		height = limit
		width = height * info.Width() / info.Height()
	}

	x := (pageW - width) / 2
	pdf.ImageOptions("diagram", x, pdf.GetY(), width, height, false, imgOpts, 0, "")
	pdf.SetY(pdf.GetY() + height + 4)
	return nil
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func writeResults(pdf *gofpdf.Fpdf, tr func(string) string, res section.Result, angles string) {
	heading(pdf, "Results")

	u := res.Unit
	a, i := u+"^2", u+"^4"
	alpha1, alpha2 := res.Angles(angles)
	convention := "counter-clockwise positive"
	if angles == section.AnglesClockwise {
		convention = "clockwise positive"
	}

	lines := []string{
		fmt.Sprintf("A = %.4f %s", res.Area, a),
		fmt.Sprintf("Xg = %.4f %s    Yg = %.4f %s", res.Xg, u, res.Yg, u),
		fmt.Sprintf("Ix = %.4f %s", res.Ix, i),
		fmt.Sprintf("Iy = %.4f %s", res.Iy, i),
		fmt.Sprintf("Ixy = %.4f %s", res.Ixy, i),
		fmt.Sprintf("I1 = %.4f %s    I2 = %.4f %s", res.I1, i, res.I2, i),
		fmt.Sprintf("alpha1 = %.2f°    alpha2 = %.2f° (%s)", alpha1, alpha2, convention),
		fmt.Sprintf("rx = %.4f %s    ry = %.4f %s", res.RadiusX(), u, res.RadiusY(), u),
	}
	for _, line := range lines {
		pdf.Cell(0, lineHeight, tr(line))
		pdf.Ln(lineHeight)
	}
	pdf.Ln(4)
}

var offsetColumns = []struct {
	title string
	width float64
}{
	{"Fig", 12}, {"Name", 48}, {"Area", 24}, {"xi", 24}, {"yi", 24}, {"a = yi-Yg", 24}, {"b = xi-Xg", 24},
}

func offsetHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range offsetColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
}

func writeOffsets(pdf *gofpdf.Fpdf, tr func(string) string, res section.Result) {
	heading(pdf, "Offsets to the global centroid")
	offsetHeader(pdf)

	_, pageH := pdf.GetPageSize()
	for _, o := range res.Offsets {
		if pdf.GetY()+7 > pageH-pageMargin {
			pdf.AddPage()
			offsetHeader(pdf)
		}
		cells := []string{
			fmt.Sprintf("%d", o.Index),
			tr(truncate(o.Name, 24)),
			fmt.Sprintf("%.4f", o.Area),
			fmt.Sprintf("%.4f", o.Xi),
			fmt.Sprintf("%.4f", o.Yi),
			fmt.Sprintf("%.4f", o.A),
			fmt.Sprintf("%.4f", o.B),
		}
		for j, text := range cells {
			align := "R"
			if j == 1 {
				align = "L"
			}
			pdf.CellFormat(offsetColumns[j].width, 7, text, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "~"
}
