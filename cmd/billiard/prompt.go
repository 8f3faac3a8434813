package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lixenwraith/billiard/physics"
	"github.com/lixenwraith/billiard/vmath"
)

var errInvalidChoice = errors.New("invalid choice")

// prompter reads initial conditions from a terminal, empty input takes the default
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{r: bufio.NewReader(r), w: w}
}

// line prints prompt and reads one trimmed line; EOF with no data is an error
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	s, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// float re-prompts until the input parses as a finite number
func (p *prompter) float(prompt string, def float64) (float64, error) {
	for {
		s, err := p.line(fmt.Sprintf("%s [%g]: ", prompt, def))
		if err != nil {
			return 0, err
		}
		if s == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && vmath.IsFinite(v) {
			return v, nil
		}
		fmt.Fprintln(p.w, "Please enter a numeric value.")
	}
}

// mode asks for the table topology; an unknown choice is a failure, not a retry
func (p *prompter) mode(def physics.Mode) (physics.Mode, error) {
	fmt.Fprintln(p.w, "Select Simulation Mode:")
	fmt.Fprintln(p.w, "  1. Circular billiard (full circle)")
	fmt.Fprintln(p.w, "  2. Semi-circular billiard (flat bottom)")

	defChoice := 1
	if def == physics.FlatBottom {
		defChoice = 2
	}
	s, err := p.line(fmt.Sprintf("Choice [%d]: ", defChoice))
	if err != nil {
		return def, err
	}
	switch s {
	case "":
		return def, nil
	case "1":
		return physics.Full, nil
	case "2":
		return physics.FlatBottom, nil
	}
	return def, fmt.Errorf("%w %q", errInvalidChoice, s)
}

// start asks for a position until it is admissible, then for the heading
func (p *prompter) start(t physics.Table, def physics.State) (physics.State, error) {
	for {
		fmt.Fprintln(p.w)
		x, err := p.float("Enter initial X coordinate", def.X)
		if err != nil {
			return physics.State{}, err
		}
		y, err := p.float("Enter initial Y coordinate", def.Y)
		if err != nil {
			return physics.State{}, err
		}

		if _, err := physics.NewState(x, y, 0, t); err != nil {
			switch {
			case errors.Is(err, physics.ErrOutsideTable):
				fmt.Fprintf(p.w, "Error: Position (%.2f, %.2f) is OUTSIDE the billiard table (r=%.1f).\n", x, y, t.Radius)
			case errors.Is(err, physics.ErrBelowChord):
				fmt.Fprintln(p.w, "Error: In Semi-Circular mode, Y cannot be negative.")
			default:
				return physics.State{}, err
			}
			fmt.Fprintln(p.w, "Please try again.")
			continue
		}

		angle, err := p.float("Enter initial angle (radians)", def.Angle)
		if err != nil {
			return physics.State{}, err
		}
		return physics.NewState(x, y, angle, t)
	}
}
