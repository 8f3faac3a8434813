package physics

import "errors"

var (
	// ErrInvalidState indicates NaN or Inf in position or heading
	ErrInvalidState = errors.New("physics: invalid state (NaN or Inf)")

	// ErrOutsideTable indicates a position outside the disk, no forward wall intersection exists
	ErrOutsideTable = errors.New("physics: position outside table")

	// ErrBelowChord indicates a position under the flat wall in flat-bottom mode
	ErrBelowChord = errors.New("physics: position below flat wall")

	// ErrInvalidTable indicates a non-positive radius or unknown mode
	ErrInvalidTable = errors.New("physics: invalid table")
)
