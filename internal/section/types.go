package section

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/goinertia/internal/figure"
)

// DefaultUnit is the length unit label used when none is given.
const DefaultUnit = "cm"

var (
	// ErrEmptyInput is returned when a computation is requested without figures.
	ErrEmptyInput = errors.New("no figures in section")

	// ErrDegenerateSection is returned when the signed areas of the figures
	// cancel out, i.e. the holes remove all solid area.
	ErrDegenerateSection = errors.New("total area is zero, check holes and figures")
)

// ValidationError represents an invalid section definition or edit.
type ValidationError struct {
	msg string
	err error
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Unwrap returns the cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.err
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Section is an ordered list of figures plus the unit label of its
// coordinates. The unit is metadata only and never enters the arithmetic.
//
// A Section is not safe for concurrent mutation; callers must serialize
// edits and computations on the same Section.
type Section struct {
	Name        string
	Description string

	unit    string
	figures []figure.Figure
}

// New creates an empty section using the given length unit label.
func New(unit string) *Section {
	if unit == "" {
		unit = DefaultUnit
	}
	return &Section{unit: unit}
}

// Unit returns the length unit label.
func (s *Section) Unit() string { return s.unit }

// SetUnit changes the length unit label.
func (s *Section) SetUnit(unit string) {
	if unit == "" {
		unit = DefaultUnit
	}
	s.unit = unit
}

// Add appends figures to the section.
func (s *Section) Add(figs ...figure.Figure) {
	s.figures = append(s.figures, figs...)
}

// Remove deletes the figure at the zero-based index and returns it.
func (s *Section) Remove(index int) (figure.Figure, error) {
	if index < 0 || index >= len(s.figures) {
		return nil, validationErrorf("figure index %d out of range [0, %d)", index, len(s.figures))
	}
	removed := s.figures[index]
	s.figures = append(s.figures[:index], s.figures[index+1:]...)
	return removed, nil
}

// Clear removes every figure.
func (s *Section) Clear() {
	s.figures = nil
}

// Len returns the number of figures.
func (s *Section) Len() int { return len(s.figures) }

// Figures returns a copy of the figure list.
func (s *Section) Figures() []figure.Figure {
	out := make([]figure.Figure, len(s.figures))
	copy(out, s.figures)
	return out
}

// Compute runs the composite section engine over the current figures.
func (s *Section) Compute(opts ...Option) (Result, error) {
	opts = append([]Option{WithUnit(s.unit)}, opts...)
	return Compute(s.figures, opts...)
}
