package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/billiard/physics"
	"github.com/lixenwraith/billiard/vmath"
)

// Glyphs
const (
	RuneWall   = '#'
	RunePath   = '·'
	RuneBounce = 'o'
	RuneStart  = 'S'
)

// Plotter draws a trajectory inside its table outline
// Terminal cells are roughly twice as tall as wide; vertical scale is halved to keep the disk round
type Plotter struct {
	WallStyle   tcell.Style
	PathStyle   tcell.Style
	BounceStyle tcell.Style
	StartStyle  tcell.Style
	TextStyle   tcell.Style

	// Title is drawn on the top row when non-empty
	Title string
}

// NewPlotter returns a plotter with the default palette
func NewPlotter() *Plotter {
	return &Plotter{
		WallStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		PathStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		BounceStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		StartStyle:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		TextStyle:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}
}

// viewport maps table coordinates to screen cells
type viewport struct {
	ox, oy float64 // Screen position of the table center
	sx, sy float64 // Cells per table unit
	w, h   int
}

// fit sizes the table into a w×h area leaving a one-cell border
func fit(w, h int, t physics.Table) viewport {
	r := t.Radius
	yTop, yBottom := r, -r
	if t.Mode == physics.FlatBottom {
		yBottom = 0
	}
	worldH := yTop - yBottom

	usableW := float64(w - 3)
	usableH := float64(h - 3)
	if usableW < 1 {
		usableW = 1
	}
	if usableH < 1 {
		usableH = 1
	}

	sx := usableW / (2 * r)
	if limit := 2 * usableH / worldH; limit < sx {
		sx = limit
	}
	sy := sx / 2

	return viewport{
		ox: float64(w-1) / 2,
		oy: 1 + yTop*sy + (usableH-worldH*sy)/2,
		sx: sx,
		sy: sy,
		w:  w,
		h:  h,
	}
}

func (v viewport) cell(p vmath.Vec2) (int, int) {
	return int(math.Round(v.ox + p.X*v.sx)), int(math.Round(v.oy - p.Y*v.sy))
}

func (v viewport) inside(x, y int) bool {
	return x >= 0 && x < v.w && y >= 0 && y < v.h
}

// Draw clears screen and renders table, path, bounce and start markers
func (p *Plotter) Draw(screen tcell.Screen, pts []vmath.Vec2, t physics.Table) {
	screen.Clear()
	w, h := screen.Size()
	if w < 4 || h < 4 {
		return
	}
	vp := fit(w, h, t)

	p.drawTable(screen, vp, t)

	for i := 1; i < len(pts); i++ {
		x0, y0 := vp.cell(pts[i-1])
		x1, y1 := vp.cell(pts[i])
		line(x0, y0, x1, y1, func(x, y int) {
			if vp.inside(x, y) {
				screen.SetContent(x, y, RunePath, nil, p.PathStyle)
			}
		})
	}

	for i := 1; i < len(pts); i++ {
		x, y := vp.cell(pts[i])
		if vp.inside(x, y) {
			screen.SetContent(x, y, RuneBounce, nil, p.BounceStyle)
		}
	}

	if len(pts) > 0 {
		x, y := vp.cell(pts[0])
		if vp.inside(x, y) {
			screen.SetContent(x, y, RuneStart, nil, p.StartStyle)
		}
	}

	title := p.Title
	if title == "" {
		title = fmt.Sprintf("r=%g %s  bounces=%d  [q] quit", t.Radius, t.Mode, max(len(pts)-1, 0))
	}
	drawText(screen, 0, 0, w, title, p.TextStyle)
}

func (p *Plotter) drawTable(screen tcell.Screen, vp viewport, t physics.Table) {
	r := t.Radius
	arc := math.Pi
	if t.Mode == physics.Full {
		arc = 2 * math.Pi
	}

	// Sample densely enough that adjacent samples land in adjacent cells
	samples := int(math.Ceil(arc*r*vp.sx*2)) + 16
	for i := 0; i <= samples; i++ {
		theta := arc * float64(i) / float64(samples)
		x, y := vp.cell(vmath.Heading(theta).Scale(r))
		if vp.inside(x, y) {
			screen.SetContent(x, y, RuneWall, nil, p.WallStyle)
		}
	}

	if t.Mode == physics.FlatBottom {
		x0, y0 := vp.cell(vmath.Vec2{X: -r})
		x1, y1 := vp.cell(vmath.Vec2{X: r})
		line(x0, y0, x1, y1, func(x, y int) {
			if vp.inside(x, y) {
				screen.SetContent(x, y, RuneWall, nil, p.WallStyle)
			}
		})
	}
}

// line rasterizes a segment with Bresenham's algorithm, endpoints included
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func drawText(screen tcell.Screen, x, y, maxW int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= maxW {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
