package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Composite section properties",
	Long: `Compute the properties of composite sections defined in
JSON, YAML or XLSX files.

Subcommands:
  compute  - Area, centroid, moments and principal axes of a section
  example  - Print and compute the I-beam worked example

Example YAML file:
  name: I-beam
  unit: cm
  figures:
    - type: rectangle
      name: top flange
      base: 12
      height: 1.2
      y: 6.9
    - type: rectangle
      name: web
      base: 0.8
      height: 12.6
    - type: circle
      name: bolt hole
      radius: 0.5
      hole: true
      x: 3
      y: 6.9

Figures may be placed by a reference point instead of the centroid:
    - type: quarter_circle
      radius: 30
      hole: true
      placement: {mode: reference, x0: 200, y0: 100, quadrant: sw}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
