package terminal

import (
	"fmt"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

var glyphs = map[cfg.EntityKind]struct {
	r     rune
	style tcell.Style
}{
	cfg.KindPlatform: {'=', tcell.StyleDefault.Foreground(tcell.ColorOlive)},
	cfg.KindPowerup:  {'*', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	cfg.KindPlayer:   {'@', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)},
	cfg.KindMob:      {'M', tcell.StyleDefault.Foreground(tcell.ColorRed)},
}

// Project maps a world rect onto the cells of a cols x rows grid, the top
// row being reserved for the status line. The result is clipped to the grid
// and may be empty.
func Project(r gamemath.Rect, cols, rows int) (x0, y0, x1, y1 int) {
	playRows := rows - 1
	sx := float64(cols) / float64(cfg.World.Width)
	sy := float64(playRows) / float64(cfg.World.Height)

	x0 = max(int(r.Left()*sx), 0)
	x1 = min(int(r.Right()*sx+0.999), cols)
	y0 = max(int(r.Top()*sy), 0) + 1
	y1 = min(int(r.Bottom()*sy+0.999), playRows) + 1
	if x1 <= x0 && x0 < cols && r.Right() > 0 {
		x1 = x0 + 1
	}
	return x0, y0, x1, y1
}

// Draw paints the render list and a status line. Later items overwrite
// earlier ones, matching the layer order.
func Draw(c Canvas, list []components.RenderItem, status string) {
	cols, rows := c.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	for _, item := range list {
		g := glyphs[item.Kind]
		x0, y0, x1, y1 := Project(item.Dest, cols, rows)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.SetContent(x, y, g.r, nil, g.style)
			}
		}
	}

	drawText(c, 0, 0, status, tcell.StyleDefault.Reverse(true))
}

func drawText(c Canvas, x, y int, s string, style tcell.Style) {
	cols, _ := c.Size()
	for _, r := range s {
		if x >= cols {
			return
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

// Status formats the score line.
func Status(score, highScore int, muted bool) string {
	s := fmt.Sprintf(" score %d  best %d  arrows/hjkl move, space jump, q quit", score, max(score, highScore))
	if muted {
		s += "  [muted]"
	}
	return s
}
