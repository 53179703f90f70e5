// Package prompt reads validated answers from a line-oriented terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrAborted is returned when the input ends before a valid answer.
var ErrAborted = errors.New("input closed")

// Range restricts the numbers accepted by Float.
type Range int

const (
	Any         Range = iota // any finite number
	Positive                 // > 0
	NonNegative              // >= 0
)

// Prompter asks questions on out and reads answers from in. Invalid
// answers are reported and the question is repeated.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints label and returns the trimmed answer.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// LineDefault is Line with a default used for an empty answer.
func (p *Prompter) LineDefault(label, def string) (string, error) {
	s, err := p.Line(fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil || s != "" {
		return s, err
	}
	return def, nil
}

func (p *Prompter) warn(msg string) {
	fmt.Fprintf(p.out, "  ✗ %s\n", msg)
}

// Float asks for a number in the given range. A decimal comma is accepted.
func (p *Prompter) Float(label string, r Range) (float64, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			p.warn("enter a number (e.g. 10 or 10.5)")
			continue
		}
		switch {
		case r == Positive && v <= 0:
			p.warn("the value must be greater than zero")
			continue
		case r == NonNegative && v < 0:
			p.warn("the value must not be negative")
			continue
		}
		return v, nil
	}
}

// YesNo asks a yes/no question.
func (p *Prompter) YesNo(label string) (bool, error) {
	for {
		s, err := p.Line(label + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y", "yes", "s", "sim":
			return true, nil
		case "n", "no", "nao", "não":
			return false, nil
		}
		p.warn("answer 'y' or 'n'")
	}
}

// Sign asks for +1 or -1. An empty answer selects def.
func (p *Prompter) Sign(label string, def int) (int, error) {
	for {
		s, err := p.Line(fmt.Sprintf("%s (+1 or -1) [%+d]: ", label, def))
		if err != nil {
			return 0, err
		}
		if s == "" {
			return def, nil
		}
		v, err := strconv.Atoi(s)
		if err == nil && (v == 1 || v == -1) {
			return v, nil
		}
		p.warn("enter +1 or -1")
	}
}

// Index asks for a number in [1, n]. An empty answer returns 0, false.
func (p *Prompter) Index(label string, n int) (int, bool, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, false, err
		}
		if s == "" {
			return 0, false, nil
		}
		v, err := strconv.Atoi(s)
		if err == nil && v >= 1 && v <= n {
			return v, true, nil
		}
		p.warn(fmt.Sprintf("enter a number between 1 and %d", n))
	}
}
