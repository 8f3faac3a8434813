package physics

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects the table boundary topology
type Mode uint8

const (
	// Full is the complete disk x²+y² ≤ r²
	Full Mode = iota
	// FlatBottom truncates the disk at the chord y = 0, lower half is wall
	FlatBottom
)

// Epsilon is the relative boundary tolerance, scaled by table radius
// Positions produced by a bounce sit on the wall up to rounding and must stay admissible
const Epsilon = 1e-9

func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case FlatBottom:
		return "flat-bottom"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode accepts the canonical names, common aliases and the numeric menu choices 1/2
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "circle", "circular", "1":
		return Full, nil
	case "flat-bottom", "flat", "flatbottom", "semi", "semi-circular", "semicircular", "2":
		return FlatBottom, nil
	}
	return Full, fmt.Errorf("%w: unknown mode %q", ErrInvalidTable, s)
}

// MarshalText implements encoding.TextMarshaler for config and flag use
func (m Mode) MarshalText() ([]byte, error) {
	if m > FlatBottom {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidTable, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Table is the immutable boundary configuration
type Table struct {
	Radius float64
	Mode   Mode
}

// Validate rejects non-positive or non-finite radius and unknown modes
func (t Table) Validate() error {
	if math.IsNaN(t.Radius) || math.IsInf(t.Radius, 0) || t.Radius <= 0 {
		return fmt.Errorf("%w: radius %v", ErrInvalidTable, t.Radius)
	}
	if t.Mode > FlatBottom {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidTable, t.Mode)
	}
	return nil
}

// Contains reports whether (x, y) is an admissible start: strictly inside the circle,
// and in FlatBottom on or above the chord (y = 0 is admissible)
func (t Table) Contains(x, y float64) bool {
	if x*x+y*y >= t.Radius*t.Radius {
		return false
	}
	if t.Mode == FlatBottom && y < 0 {
		return false
	}
	return true
}

// OnBoundary reports whether (x, y) lies on the wall within tolerance
func (t Table) OnBoundary(x, y float64) bool {
	tol := Epsilon * t.Radius
	if t.Mode == FlatBottom && math.Abs(y) <= tol && math.Abs(x) <= t.Radius+tol {
		return true
	}
	return math.Abs(math.Hypot(x, y)-t.Radius) <= tol
}
