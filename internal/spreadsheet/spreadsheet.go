// Package spreadsheet reads figure lists from and writes results to XLSX
// workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by Write. Read looks for FiguresSheet first and falls
// back to the first sheet of the workbook.
const (
	FiguresSheet = "Figures"
	SummarySheet = "Summary"
	OffsetsSheet = "Offsets"
)

// FigureColumns is the header of a figure sheet. The placement columns
// (mode through arc) are optional when reading.
var FigureColumns = []string{
	"type", "name", "hole", "x", "y", "base", "height", "radius", "sign",
	"mode", "x0", "y0", "corner", "quadrant", "arc",
}

// ReadFile reads a section definition from an XLSX file.
func ReadFile(path string) (*section.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	def, err := Read(f)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return def, nil
}

// Read parses a figure sheet: one header row naming the columns (any order,
// case-insensitive) followed by one figure per row. Blank rows are skipped.
func Read(r io.Reader) (*section.Definition, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := FiguresSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["type"]; !ok {
		return nil, fmt.Errorf("sheet %q has no type column", sheet)
	}

	def := &section.Definition{}
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		spec, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		def.Figures = append(def.Figures, spec)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func parseRow(cols map[string]int, row []string) (section.FigureSpec, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var (
		spec section.FigureSpec
		err  error
	)
	spec.Type = cell("type")
	spec.Name = cell("name")
	spec.Hole = parseBool(cell("hole"))

	floats := []struct {
		col string
		dst *float64
	}{
		{"x", &spec.X}, {"y", &spec.Y},
		{"base", &spec.Base}, {"height", &spec.Height}, {"radius", &spec.Radius},
	}
	for _, fl := range floats {
		if *fl.dst, err = parseFloat(fl.col, cell(fl.col)); err != nil {
			return spec, err
		}
	}

	if s := cell("sign"); s != "" {
		sign, err := parseFloat("sign", s)
		if err != nil {
			return spec, err
		}
		if sign != math.Trunc(sign) {
			return spec, fmt.Errorf("%w: column sign: %q must be +1 or -1", figure.ErrInvalidParameter, s)
		}
		spec.Sign = int(sign)
	}

	if mode := cell("mode"); mode != "" {
		p := &section.Placement{
			Mode:     strings.ToLower(mode),
			Corner:   cell("corner"),
			Quadrant: cell("quadrant"),
			Arc:      cell("arc"),
		}
		if p.X0, err = parseFloat("x0", cell("x0")); err != nil {
			return spec, err
		}
		if p.Y0, err = parseFloat("y0", cell("y0")); err != nil {
			return spec, err
		}
		spec.Placement = p
	}
	return spec, nil
}

func parseFloat(col, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", col, s)
	}
	return v, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "x", "hole":
		return true
	}
	return false
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
