package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/billiard/physics"
	"github.com/lixenwraith/billiard/trajectory"
	"github.com/lixenwraith/billiard/vmath"
)

// View opens the terminal, shows the plot and blocks until the user quits
func View(pts []vmath.Vec2, t physics.Table) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("render: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("render: init screen: %w", err)
	}
	defer screen.Fini()

	return Run(screen, NewPlotter(), pts, t)
}

// Run draws on an initialized screen and handles events until Esc, q or Ctrl-C
func Run(screen tcell.Screen, p *Plotter, pts []vmath.Vec2, t physics.Table) error {
	p.Draw(screen, pts, t)
	screen.Show()

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized
			return nil
		case *tcell.EventResize:
			screen.Sync()
			p.Draw(screen, pts, t)
			screen.Show()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				return nil
			}
		}
	}
}

// Hook returns a trajectory hook that opens the terminal plot
func Hook() trajectory.Hook {
	return trajectory.HookFunc{
		Label: "plot",
		Fn: func(tr *trajectory.Trajectory) error {
			return View(tr.Points(), tr.Table)
		},
	}
}
