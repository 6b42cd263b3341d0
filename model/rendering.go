package model

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/zonelife/rules"
)

const (
	gridPosBlock = '█'
	gridPosEmpty = ' '
)

var (
	aliveStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	deadStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	specialStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
)

// View is everything a renderer needs to draw one committed generation
type View struct {
	Cells       *CellSet
	GridSize    Size
	Generation  int
	Population  int
	Iterations  int
	Time        time.Duration
	MemoryUsage uint64
	Paused      bool
}

// TerminalRenderer draws a window of the plane centered on the origin onto a
// tcell screen. Every cell is two columns wide.
type TerminalRenderer struct {
	screen   tcell.Screen
	viewport Size
}

// NewTerminalRenderer creates a renderer. A zero viewport follows the screen size.
func NewTerminalRenderer(screen tcell.Screen, viewport Size) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, viewport: viewport}
}

// Viewport returns the number of cells drawn horizontally and vertically
func (r *TerminalRenderer) Viewport() Size {
	if r.viewport.W > 0 && r.viewport.H > 0 {
		return r.viewport
	}
	w, h := r.screen.Size()
	return Size{W: max(w/2, 1), H: max(h-1, 1)}
}

// Origin returns the world coordinate drawn in the top-left corner
func (r *TerminalRenderer) Origin() Cell {
	vp := r.Viewport()
	return Cell{X: -vp.W / 2, Y: -vp.H / 2}
}

// Render draws the board and a status line below it
func (r *TerminalRenderer) Render(v View) error {
	vp := r.Viewport()
	origin := r.Origin()

	r.screen.Clear()
	for y := range vp.H {
		for x := range vp.W {
			world := origin.Add(Cell{X: x, Y: y})
			ch, style := gridPosEmpty, deadStyle
			switch {
			case v.Cells.Contains(world):
				ch, style = gridPosBlock, aliveStyle
			case rules.Classify(world.X, world.Y, v.GridSize.W, v.GridSize.H).Special():
				style = specialStyle
			}
			r.screen.SetContent(x*2, y, ch, nil, style)
			r.screen.SetContent(x*2+1, y, ch, nil, style)
		}
	}

	r.drawText(0, vp.H, statusLine(v))
	r.screen.Show()
	return nil
}

// Clear blanks the screen
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, statusStyle)
	}
}

func statusLine(v View) string {
	state := "Running"
	if v.Paused {
		state = "Paused"
	}
	if v.Population == 0 {
		state = "Extinct"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Time: %.2fs | Mem: %.1f MiB | %s",
		v.Generation, v.Population, v.Time.Seconds(), float64(v.MemoryUsage)/(1<<20), state)
}
