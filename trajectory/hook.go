package trajectory

import (
	"errors"
	"fmt"
	"log"
)

// Hook post-processes a finished trajectory (plotting, sonification)
type Hook interface {
	Name() string
	Process(tr *Trajectory) error
}

// HookFunc adapts a function to Hook
type HookFunc struct {
	Label string
	Fn    func(tr *Trajectory) error
}

func (h HookFunc) Name() string {
	return h.Label
}

func (h HookFunc) Process(tr *Trajectory) error {
	return h.Fn(tr)
}

// RunHooks runs hooks in order; a failing hook does not stop the rest, errors are joined
func RunHooks(tr *Trajectory, hooks ...Hook) error {
	var errs []error
	for _, h := range hooks {
		if err := h.Process(tr); err != nil {
			log.Printf("[trajectory] hook %s failed: %v", h.Name(), err)
			errs = append(errs, fmt.Errorf("hook %s: %w", h.Name(), err))
		}
	}
	return errors.Join(errs...)
}
