package trajectory

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/billiard/physics"
	"github.com/lixenwraith/billiard/vmath"
)

// Observer is called after every successful bounce, step counts from 1
type Observer func(step int, s physics.State, wall physics.Wall)

// Trajectory is the recorded result of a run
type Trajectory struct {
	Table     physics.Table
	States    []physics.State // States[0] is the start, States[i] the state after bounce i
	Walls     []physics.Wall  // Walls[i-1] is the wall hit by bounce i
	Distances []float64       // Distances[i-1] is the flight length of bounce i

	ArcHits   int
	ChordHits int
}

// Bounces returns the number of completed bounces
func (tr *Trajectory) Bounces() int {
	return len(tr.Walls)
}

// Start returns the initial state
func (tr *Trajectory) Start() physics.State {
	return tr.States[0]
}

// Last returns the final recorded state
func (tr *Trajectory) Last() physics.State {
	return tr.States[len(tr.States)-1]
}

// Points returns all recorded positions in order
func (tr *Trajectory) Points() []vmath.Vec2 {
	pts := make([]vmath.Vec2, len(tr.States))
	for i, s := range tr.States {
		pts[i] = s.Pos()
	}
	return pts
}

// PathLength returns the total distance travelled
func (tr *Trajectory) PathLength() float64 {
	var sum float64
	for _, d := range tr.Distances {
		sum += d
	}
	return sum
}

type runConfig struct {
	sink     io.Writer
	observer Observer
	hooks    []Hook
}

// Option configures a run
type Option func(*runConfig)

// WithSink streams every position to w in log format as it is produced
func WithSink(w io.Writer) Option {
	return func(c *runConfig) { c.sink = w }
}

// WithObserver registers a per-bounce callback
func WithObserver(fn Observer) Option {
	return func(c *runConfig) { c.observer = fn }
}

// WithHooks appends post-processing hooks, run in order after a successful run
func WithHooks(hooks ...Hook) Option {
	return func(c *runConfig) { c.hooks = append(c.hooks, hooks...) }
}

// Run validates the start state and advances it exactly n times
// On a failed bounce the partial trajectory is returned with a *BounceError
func Run(start physics.State, table physics.Table, n int, opts ...Option) (*Trajectory, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, n)
	}
	s, err := physics.NewState(start.X, start.Y, start.Angle, table)
	if err != nil {
		return nil, err
	}

	tr := &Trajectory{
		Table:     table,
		States:    make([]physics.State, 1, n+1),
		Walls:     make([]physics.Wall, 0, n),
		Distances: make([]float64, 0, n),
	}
	tr.States[0] = s

	if cfg.sink != nil {
		if err := writePoint(cfg.sink, s); err != nil {
			return tr, err
		}
	}

	for i := 1; i <= n; i++ {
		imp, err := physics.Bounce(s, table)
		if err != nil {
			log.Printf("[trajectory] bounce %d failed at (%g, %g): %v", i, s.X, s.Y, err)
			return tr, &BounceError{Step: i, State: s, Err: err}
		}
		s = imp.State

		tr.States = append(tr.States, s)
		tr.Walls = append(tr.Walls, imp.Wall)
		tr.Distances = append(tr.Distances, imp.Distance)
		if imp.Wall == physics.WallChord {
			tr.ChordHits++
		} else {
			tr.ArcHits++
		}

		if cfg.sink != nil {
			if err := writePoint(cfg.sink, s); err != nil {
				return tr, err
			}
		}
		if cfg.observer != nil {
			cfg.observer(i, s, imp.Wall)
		}
	}

	log.Printf("[trajectory] %d bounces on %s table r=%g: %d arc, %d chord",
		n, table.Mode, table.Radius, tr.ArcHits, tr.ChordHits)

	if err := RunHooks(tr, cfg.hooks...); err != nil {
		return tr, err
	}
	return tr, nil
}
