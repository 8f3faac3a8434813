package trajectory

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/billiard/physics"
)

var (
	// ErrInvalidIterations indicates a negative bounce count
	ErrInvalidIterations = errors.New("trajectory: invalid iteration count")

	// ErrMalformedLog indicates a trajectory log line that is not a pair of reals
	ErrMalformedLog = errors.New("trajectory: malformed log line")
)

// BounceError wraps an engine failure with the step it occurred on
type BounceError struct {
	Step  int
	State physics.State
	Err   error
}

func (e *BounceError) Error() string {
	return fmt.Sprintf("bounce %d from (%g, %g, %g): %v", e.Step, e.State.X, e.State.Y, e.State.Angle, e.Err)
}

func (e *BounceError) Unwrap() error {
	return e.Err
}
