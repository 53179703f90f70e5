package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goinertia/internal/diagram"
	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/alexiusacademia/goinertia/internal/report"
	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/alexiusacademia/goinertia/internal/server"
	"github.com/alexiusacademia/goinertia/internal/spreadsheet"
	"github.com/spf13/cobra"
)

var (
	sectionComputeFile        string
	sectionComputeVerbose     bool
	sectionComputeJSON        bool
	sectionComputeShowDiagram bool
	sectionComputeExportFile  string
	sectionComputeReportFile  string
	sectionComputeXLSXFile    string
	sectionComputeUnit        string
	sectionComputeAngles      string
	sectionComputeCheck       bool
	sectionComputeRotation    bool
)

var sectionComputeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the properties of a composite section",
	Long: `Compute area, centroid, second moments (Ix, Iy, Ixy), principal
moments (I1, I2) and principal directions of a composite section.

Holes are entered as figures with "hole: true" and subtract their
area and moments from the section.

Examples:
  goinertia section compute --file ibeam.yaml
  goinertia section compute -f plate.json --verbose --diagram --rotation
  goinertia section compute -f plate.xlsx --report plate.pdf --xlsx results.xlsx
  goinertia section compute -f ibeam.yaml --json --angles clockwise`,
	RunE: runSectionCompute,
}

func init() {
	sectionCmd.AddCommand(sectionComputeCmd)

	sectionComputeCmd.Flags().StringVarP(&sectionComputeFile, "file", "f", "", "Path to section file (json, yaml, xlsx) [required]")
	sectionComputeCmd.MarkFlagRequired("file")

	// Output options
	sectionComputeCmd.Flags().BoolVarP(&sectionComputeVerbose, "verbose", "v", false, "Print the step-by-step calculation tables")
	sectionComputeCmd.Flags().BoolVar(&sectionComputeJSON, "json", false, "Print the result as JSON")
	sectionComputeCmd.Flags().StringVar(&sectionComputeUnit, "unit", "", "Length unit label (overrides the file)")
	sectionComputeCmd.Flags().StringVar(&sectionComputeAngles, "angles", "", "Angle convention: math or clockwise")
	sectionComputeCmd.Flags().BoolVar(&sectionComputeCheck, "check", false, "Cross-check area and centroid against the figure outlines")

	// Diagram and export options
	sectionComputeCmd.Flags().BoolVar(&sectionComputeShowDiagram, "diagram", false, "Show ASCII section diagram")
	sectionComputeCmd.Flags().BoolVar(&sectionComputeRotation, "rotation", false, "Plot the moments about rotated axes from 0° to 180°")
	sectionComputeCmd.Flags().StringVarP(&sectionComputeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	sectionComputeCmd.Flags().StringVar(&sectionComputeReportFile, "report", "", "Write a PDF report to file")
	sectionComputeCmd.Flags().StringVar(&sectionComputeXLSXFile, "xlsx", "", "Write the results to an XLSX workbook")
}

func runSectionCompute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	def, err := loadDefinition(sectionComputeFile)
	if err != nil {
		return fmt.Errorf("error loading section: %w", err)
	}
	def.Unit = unitFor(sectionComputeUnit, def)
	angles := anglesFor(sectionComputeAngles)

	sec, err := def.Build()
	if err != nil {
		return fmt.Errorf("error building section: %w", err)
	}

	verbose := (sectionComputeVerbose || cfg.Verbose) && !sectionComputeJSON
	opts := []section.Option{section.WithLogger(logger)}
	if verbose {
		printHeader(out, def)
		opts = append(opts, section.WithTracer(section.NewTableTracer(out)))
	}

	res, err := sec.Compute(opts...)
	if err != nil {
		return fmt.Errorf("error computing section: %w", err)
	}
	logger.Info().Str("section", def.Name).Int("figures", sec.Len()).Msg("section computed")

	var check *section.OutlineCheck
	if sectionComputeCheck {
		chk, err := section.CheckOutlines(sec.Figures(), res, figure.DefaultSegments)
		if err != nil {
			return fmt.Errorf("error checking outlines: %w", err)
		}
		check = &chk
	}

	if sectionComputeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(server.ComputeResponse{Name: def.Name, Result: res, Check: check}); err != nil {
			return err
		}
	} else {
		if !verbose {
			printHeader(out, def)
			printFigures(out, sec.Figures(), res)
		}
		printResult(out, res, angles)
		if check != nil {
			printCheck(out, res, *check)
		}
		if sectionComputeShowDiagram {
			fmt.Fprint(out, diagram.DrawASCIISection(sec.Figures(), res, diagram.DefaultASCIIOptions))
			fmt.Fprintln(out)
		}
		if sectionComputeRotation {
			fmt.Fprintln(out, "ROTATED MOMENTS:")
			fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
			fmt.Fprint(out, diagram.DrawRotationCurve(res, diagram.DefaultCurveOptions))
			fmt.Fprintln(out)
		}
	}

	return exportOutputs(out, def, sec, res, angles)
}

func exportOutputs(out io.Writer, def *section.Definition, sec *section.Section, res section.Result, angles string) error {
	if sectionComputeExportFile != "" {
		if err := diagram.ExportSectionDiagram(sec.Figures(), res, sectionComputeExportFile, plotOptions(def.Name)); err != nil {
			return fmt.Errorf("error exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "  ✓ Diagram exported to: %s\n", sectionComputeExportFile)
	}

	if sectionComputeReportFile != "" {
		png, err := diagram.RenderPNG(sec.Figures(), res, plotOptions(def.Name))
		if err != nil {
			return fmt.Errorf("error rendering diagram: %w", err)
		}
		f, err := os.Create(sectionComputeReportFile)
		if err != nil {
			return err
		}
		err = report.Write(f, res, report.Options{
			Title:   cfg.Report.Title,
			Author:  cfg.Report.Author,
			Section: def.Name,
			Angles:  angles,
			Diagram: png,
		})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("error writing report: %w", err)
		}
		fmt.Fprintf(out, "  ✓ Report written to: %s\n", sectionComputeReportFile)
	}

	if sectionComputeXLSXFile != "" {
		if err := spreadsheet.WriteFile(sectionComputeXLSXFile, def, res); err != nil {
			return fmt.Errorf("error writing workbook: %w", err)
		}
		fmt.Fprintf(out, "  ✓ Workbook written to: %s\n", sectionComputeXLSXFile)
	}
	return nil
}

func printHeader(out io.Writer, def *section.Definition) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     COMPOSITE SECTION - MOMENTS OF INERTIA")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	if def.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", def.Name)
	}
	if def.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", def.Description)
	}
	fmt.Fprintf(out, "  Unit: %s\n", def.Unit)
}

func printFigures(out io.Writer, figs []figure.Figure, res section.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "FIGURES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tName\tType\tx\ty\tA (%s)\ta\tb\n", res.AreaUnit())
	fmt.Fprintf(w, "  ─\t────\t────\t─\t─\t─\t─\t─\n")
	for i, f := range figs {
		c := f.Centroid()
		kind := f.Kind().String()
		if f.IsHole() {
			kind += " (hole)"
		}
		off := res.Offsets[i]
		fmt.Fprintf(w, "  %d\t%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n", i+1, f.Name(), kind, c.X, c.Y, f.Area(), off.A, off.B)
	}
	w.Flush()
}

func printResult(out io.Writer, res section.Result, angles string) {
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox("SECTION PROPERTIES", diagram.ResultLines(res, angles)))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RADII OF GYRATION:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  rx = √(Ix/A):\t%.4f %s\n", res.RadiusX(), res.Unit)
	fmt.Fprintf(w, "  ry = √(Iy/A):\t%.4f %s\n", res.RadiusY(), res.Unit)
	w.Flush()
	fmt.Fprintln(out)
}

func printCheck(out io.Writer, res section.Result, chk section.OutlineCheck) {
	fmt.Fprintln(out, "OUTLINE CHECK:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (outlines):\t%.4f %s\t(%+.4f%%)\n", chk.Area, res.AreaUnit(), 100*chk.AreaDeviation)
	fmt.Fprintf(w, "  Centroid (outlines):\t(%.4f, %.4f)\tshift %.6f %s\n", chk.Xg, chk.Yg, chk.CentroidShift, res.Unit)
	w.Flush()
	fmt.Fprintln(out)
}
