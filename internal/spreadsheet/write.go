package spreadsheet

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/xuri/excelize/v2"
)

// WriteFile saves the workbook built by Write to path.
func WriteFile(path string, def *section.Definition, res section.Result) error {
	f, err := build(def, res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Write encodes a workbook with a Summary sheet (quantity, value, unit) and
// an Offsets sheet (one row per figure). When def is not nil a Figures
// sheet is added so the workbook can be read back with Read.
func Write(w io.Writer, def *section.Definition, res section.Result) error {
	f, err := build(def, res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func build(def *section.Definition, res section.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	steps := []func(*excelize.File, int) error{
		func(f *excelize.File, style int) error { return writeSummary(f, style, res) },
		func(f *excelize.File, style int) error { return writeOffsets(f, style, res.Offsets) },
	}
	if def != nil {
		steps = append(steps, func(f *excelize.File, style int) error { return writeFigures(f, style, def) })
	}
	for _, step := range steps {
		if err := step(f, bold); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, style int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return f.SetRowStyle(sheet, 1, 1, style)
}

func writeSummary(f *excelize.File, style int, res section.Result) error {
	u, a, i := res.Unit, res.AreaUnit(), res.InertiaUnit()
	cw1, cw2 := res.ClockwiseAngles()

	rows := [][]any{
		{"Quantity", "Value", "Unit"},
		{"A", res.Area, a},
		{"Xg", res.Xg, u},
		{"Yg", res.Yg, u},
		{"Ix", res.Ix, i},
		{"Iy", res.Iy, i},
		{"Ixy", res.Ixy, i},
		{"I1", res.I1, i},
		{"I2", res.I2, i},
		{"alpha1", res.Alpha1Deg(), "deg"},
		{"alpha2", res.Alpha2Deg(), "deg"},
		{"alpha1 (clockwise)", cw1, "deg"},
		{"alpha2 (clockwise)", cw2, "deg"},
		{"rx", res.RadiusX(), u},
		{"ry", res.RadiusY(), u},
	}
	if err := writeRows(f, SummarySheet, style, rows); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "A", 20)
}

func writeOffsets(f *excelize.File, style int, offsets []section.OffsetRow) error {
	if _, err := f.NewSheet(OffsetsSheet); err != nil {
		return err
	}

	rows := [][]any{{"Index", "Name", "Area", "xi", "yi", "a", "b"}}
	for _, o := range offsets {
		rows = append(rows, []any{o.Index, o.Name, o.Area, o.Xi, o.Yi, o.A, o.B})
	}
	return writeRows(f, OffsetsSheet, style, rows)
}

func writeFigures(f *excelize.File, style int, def *section.Definition) error {
	if _, err := f.NewSheet(FiguresSheet); err != nil {
		return err
	}

	header := make([]any, len(FigureColumns))
	for i, c := range FigureColumns {
		header[i] = c
	}
	rows := [][]any{header}
	for _, s := range def.Figures {
		row := []any{s.Type, s.Name, s.Hole, s.X, s.Y, s.Base, s.Height, s.Radius, s.Sign}
		if p := s.Placement; p != nil {
			row = append(row, p.Mode, p.X0, p.Y0, p.Corner, p.Quadrant, p.Arc)
		}
		rows = append(rows, row)
	}
	return writeRows(f, FiguresSheet, style, rows)
}
