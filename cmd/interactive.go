package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/alexiusacademia/goinertia/internal/prompt"
	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Build a section figure by figure from prompts",
	Long: `Start a menu-driven session: add rectangles, circles, right
triangles, semicircles and quarter circles (solid or hole), remove
figures and compute the section at any time.

Example:
  goinertia interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		return runInteractive(p, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

const interactiveMenu = `
Available figures:
  1 - Rectangle
  2 - Circle
  3 - Right triangle
  4 - Semicircle
  5 - Quarter circle
Actions:
  6 - Compute (verbose)
  7 - Compute (quiet) + summary
  8 - Remove figure
  9 - List figures
  s - Save section as YAML
  0 - Quit
`

func runInteractive(p *prompt.Prompter, out io.Writer) error {
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     MOMENTS OF INERTIA - INTERACTIVE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")

	unit, err := p.LineDefault("Length unit (e.g. mm, cm, m)", cfg.Unit)
	if err != nil {
		return interactiveEnd(err)
	}
	sec := section.New(unit)

	for {
		fmt.Fprint(out, interactiveMenu)
		choice, err := p.Line("Choice: ")
		if err != nil {
			return interactiveEnd(err)
		}

		switch choice {
		case "0", "q":
			return nil
		case "1", "2", "3", "4", "5":
			f, err := readFigure(p, choice, sec.Len()+1)
			if err != nil {
				return interactiveEnd(err)
			}
			sec.Add(f)
			fmt.Fprintf(out, "  ✓ %s added.\n", f.Name())
		case "6", "7":
			computeInteractive(out, sec, choice == "6")
		case "8":
			if err := removeInteractive(p, out, sec); err != nil {
				return interactiveEnd(err)
			}
		case "9":
			listFigures(out, sec)
		case "s":
			if err := saveInteractive(p, out, sec); err != nil {
				return interactiveEnd(err)
			}
		default:
			fmt.Fprintln(out, "  ✗ Invalid option.")
		}
	}
}

// interactiveEnd treats closed input as a normal end of the session.
func interactiveEnd(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		return nil
	}
	return err
}

var menuKinds = map[string]figure.Kind{
	"1": figure.KindRectangle,
	"2": figure.KindCircle,
	"3": figure.KindRightTriangle,
	"4": figure.KindSemicircle,
	"5": figure.KindQuarterCircle,
}

func readFigure(p *prompt.Prompter, choice string, n int) (figure.Figure, error) {
	hole, err := p.YesNo("Is it a hole?")
	if err != nil {
		return nil, err
	}
	x, err := p.Float("Centroid x: ", prompt.Any)
	if err != nil {
		return nil, err
	}
	y, err := p.Float("Centroid y: ", prompt.Any)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s %d", menuKinds[choice], n)
	opts := []figure.Option{figure.At(x, y), figure.Hole(hole), figure.Named(name)}

	switch choice {
	case "1", "3":
		base, err := p.Float("Base: ", prompt.Positive)
		if err != nil {
			return nil, err
		}
		height, err := p.Float("Height: ", prompt.Positive)
		if err != nil {
			return nil, err
		}
		if choice == "1" {
			return figure.NewRectangle(base, height, opts...), nil
		}
		sign, err := p.Sign("Ixy sign", figure.DefaultTriangleSign)
		if err != nil {
			return nil, err
		}
		return figure.NewRightTriangle(base, height, sign, opts...)
	}

	radius, err := p.Float("Radius: ", prompt.Positive)
	if err != nil {
		return nil, err
	}
	switch choice {
	case "2":
		return figure.NewCircle(radius, opts...), nil
	case "4":
		return figure.NewSemicircle(radius, opts...), nil
	}
	sign, err := p.Sign("Ixy sign of the quarter circle", figure.DefaultQuarterCircleSign)
	if err != nil {
		return nil, err
	}
	return figure.NewQuarterCircle(radius, sign, opts...)
}

func computeInteractive(out io.Writer, sec *section.Section, verbose bool) {
	if sec.Len() == 0 {
		fmt.Fprintln(out, "  ⚠ No figures yet. Add at least one figure before computing.")
		return
	}

	opts := []section.Option{section.WithLogger(logger)}
	if verbose {
		opts = append(opts, section.WithTracer(section.NewTableTracer(out)))
	}
	res, err := sec.Compute(opts...)
	if err != nil {
		fmt.Fprintf(out, "  ✗ %v\n", err)
		return
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, res.Summary())
}

func listFigures(out io.Writer, sec *section.Section) {
	if sec.Len() == 0 {
		fmt.Fprintln(out, "  No figures in the section.")
		return
	}
	fmt.Fprintln(out, "\nFigures in the section:")
	for i, f := range sec.Figures() {
		kind := "solid"
		if f.IsHole() {
			kind = "HOLE"
		}
		c := f.Centroid()
		fmt.Fprintf(out, "  %d - %s [%s] (x=%g, y=%g)\n", i+1, f.Name(), kind, c.X, c.Y)
	}
}

func removeInteractive(p *prompt.Prompter, out io.Writer, sec *section.Section) error {
	if sec.Len() == 0 {
		fmt.Fprintln(out, "  ⚠ There are no figures to remove.")
		return nil
	}
	listFigures(out, sec)

	idx, ok, err := p.Index("Number of the figure to remove (Enter to cancel): ", sec.Len())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "  ✓ Removal cancelled.")
		return nil
	}
	removed, err := sec.Remove(idx - 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  ✓ Figure removed: %s\n", removed.Name())
	return nil
}

func saveInteractive(p *prompt.Prompter, out io.Writer, sec *section.Section) error {
	path, err := p.LineDefault("File name", "section.yaml")
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(sec.Definition())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(out, "  ✗ %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "  ✓ Section saved to: %s\n", path)
	return nil
}
