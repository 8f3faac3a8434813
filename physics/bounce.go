package physics

import (
	"fmt"
	"math"
)

// Wall identifies which boundary segment absorbed an impact
type Wall uint8

const (
	// WallCurved is the circular arc x²+y² = r²
	WallCurved Wall = iota
	// WallChord is the flat segment y = 0 in flat-bottom mode
	WallChord
)

func (w Wall) String() string {
	if w == WallChord {
		return "chord"
	}
	return "curved"
}

// Impact is the result of one free-flight segment
type Impact struct {
	State    State   // Position on the wall and outgoing heading
	Wall     Wall    // Segment that was hit
	Distance float64 // Path length travelled from the previous state
}

// Advance returns the state immediately after the next wall collision
// The input is not modified; pure and safe for concurrent use
func Advance(s State, t Table) (State, error) {
	imp, err := Bounce(s, t)
	if err != nil {
		return s, err
	}
	return imp.State, nil
}

// Bounce computes the next impact for a straight path from s
//
// Path: P(d) = (x0 + d·cosα, y0 + d·sinα), d ≥ 0
// Circle: d² + 2ad + k = 0 with a = x0·cosα + y0·sinα, k = x0²+y0²-r²
// Forward root: d = √(a²-k) - a
//
// In flat-bottom mode the chord y = 0 competes when the heading points down:
// d_flat = -y0 / sinα, chord wins when d_flat < d_curve
// Both distances equal within tolerance is a corner hit at (±r, 0)
func Bounce(s State, t Table) (Impact, error) {
	if err := t.Validate(); err != nil {
		return Impact{}, err
	}
	if !s.IsFinite() {
		return Impact{}, fmt.Errorf("%w: (%v, %v, %v)", ErrInvalidState, s.X, s.Y, s.Angle)
	}

	r := t.Radius
	x0, y0, alpha := s.X, s.Y, s.Angle

	// Points on the wall from a previous bounce are admissible up to rounding
	tolSq := 2 * Epsilon * r * r
	if t.Mode == FlatBottom {
		if y0 < -Epsilon*r {
			return Impact{}, fmt.Errorf("%w: y = %g", ErrBelowChord, y0)
		}
		if y0 < 0 {
			y0 = 0
		}
	}

	sin, cos := math.Sincos(alpha)
	a := x0*cos + y0*sin
	k := x0*x0 + y0*y0 - r*r
	if k > tolSq {
		return Impact{}, fmt.Errorf("%w: (%g, %g), radius %g", ErrOutsideTable, x0, y0, r)
	}

	delta := a*a - k
	if delta < 0 {
		if delta < -tolSq {
			return Impact{}, fmt.Errorf("%w: discriminant %g", ErrOutsideTable, delta)
		}
		// Grazing a wall point from just outside numerically, treat as tangent
		delta = 0
	}

	dCurve := math.Sqrt(delta) - a
	if dCurve < 0 {
		dCurve = 0
	}

	// |sinα| ≤ Epsilon runs parallel to the chord and never reaches it
	if t.Mode == FlatBottom && sin < -Epsilon {
		dFlat := -y0 / sin
		switch {
		case atCorner(dFlat, dCurve, r):
			// Chord and arc meet at a right angle, the ball returns along its path
			return Impact{
				State: State{
					X:     math.Copysign(r, x0+cos*dFlat),
					Y:     0,
					Angle: alpha + math.Pi,
				},
				Wall:     WallChord,
				Distance: dFlat,
			}, nil
		case dFlat < dCurve:
			return Impact{
				State: State{
					X:     x0 + cos*dFlat,
					Y:     0,
					Angle: -alpha,
				},
				Wall:     WallChord,
				Distance: dFlat,
			}, nil
		}
	}

	xc := x0 + cos*dCurve
	yc := y0 + sin*dCurve
	if t.Mode == FlatBottom && yc < 0 {
		yc = 0
	}

	// Outward normal angle at the impact point
	phi := math.Atan2(yc, xc)

	return Impact{
		State: State{
			X:     xc,
			Y:     yc,
			Angle: 2*phi - alpha + math.Pi,
		},
		Wall:     WallCurved,
		Distance: dCurve,
	}, nil
}

// atCorner reports whether the chord and the arc are reached at the same point
func atCorner(dFlat, dCurve, r float64) bool {
	return math.Abs(dFlat-dCurve) <= Epsilon*r
}
