package physics

import (
	"fmt"

	"github.com/lixenwraith/billiard/vmath"
)

// State is the particle position and heading in radians
// Heading is not normalized; consumers must accept any real angle
type State struct {
	X, Y  float64
	Angle float64
}

// NewState validates a starting position against the table
// Rejects x²+y² ≥ r², and y < 0 in flat-bottom mode
func NewState(x, y, angle float64, t Table) (State, error) {
	if err := t.Validate(); err != nil {
		return State{}, err
	}
	s := State{X: x, Y: y, Angle: angle}
	if !s.IsFinite() {
		return State{}, fmt.Errorf("%w: (%v, %v, %v)", ErrInvalidState, x, y, angle)
	}
	if x*x+y*y >= t.Radius*t.Radius {
		return State{}, fmt.Errorf("%w: (%g, %g) at distance %.4g, radius %g",
			ErrOutsideTable, x, y, s.Pos().Length(), t.Radius)
	}
	if t.Mode == FlatBottom && y < 0 {
		return State{}, fmt.Errorf("%w: y = %g", ErrBelowChord, y)
	}
	return s, nil
}

// Pos returns the position as a vector
func (s State) Pos() vmath.Vec2 {
	return vmath.Vec2{X: s.X, Y: s.Y}
}

// Direction returns the unit heading vector
func (s State) Direction() vmath.Vec2 {
	return vmath.Heading(s.Angle)
}

// IsFinite reports whether all fields are finite
func (s State) IsFinite() bool {
	return vmath.IsFinite(s.X) && vmath.IsFinite(s.Y) && vmath.IsFinite(s.Angle)
}

// Advance moves the state to its next wall impact in place
// State is left untouched on error
func (s *State) Advance(t Table) error {
	next, err := Advance(*s, t)
	if err != nil {
		return err
	}
	*s = next
	return nil
}
