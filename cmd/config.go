package cmd

import (
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goinertia/internal/diagram"
	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/alexiusacademia/goinertia/internal/spreadsheet"
)

// loadDefinition reads a section definition from a JSON, YAML or XLSX file.
func loadDefinition(path string) (*section.Definition, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return spreadsheet.ReadFile(path)
	}
	return section.LoadFromFile(path)
}

// unitFor resolves the unit label: flag, then file, then configuration.
func unitFor(flag string, def *section.Definition) string {
	switch {
	case flag != "":
		return flag
	case def != nil && def.Unit != "":
		return def.Unit
	}
	return cfg.Unit
}

func anglesFor(flag string) string {
	if flag == "" {
		flag = cfg.Angles
	}
	if strings.EqualFold(flag, section.AnglesClockwise) {
		return section.AnglesClockwise
	}
	return section.AnglesMath
}

func plotOptions(title string) diagram.PlotOptions {
	return diagram.PlotOptions{
		Title:  title,
		Width:  cfg.Diagram.Width,
		Height: cfg.Diagram.Height,
	}
}
