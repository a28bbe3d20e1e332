// Package termsurface rasterises game frames onto a terminal grid. Each cell
// covers CellW x CellH canvas pixels.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
	"github.com/plus3/chomp/render"
)

const (
	glyphWall        = '█'
	glyphCollectible = '·'
	glyphChaser      = 'ᗣ'
	glyphPlayer      = 'ᗧ'
	glyphPlayerShut  = '●'
)

// Default cell size for a 500x500 canvas on an 80x25 terminal.
const (
	DefaultCellW = 10
	DefaultCellH = 20
)

// Surface draws onto a tcell screen.
type Surface struct {
	screen tcell.Screen
	lvl    *level.Level
	cellW  float64
	cellH  float64
}

// New creates a surface for lvl on screen.
func New(screen tcell.Screen, lvl *level.Level, cellW, cellH float64) *Surface {
	return &Surface{screen: screen, lvl: lvl, cellW: cellW, cellH: cellH}
}

// Cols and Rows report the grid the level needs.
func (s *Surface) Cols() int { return int(math.Ceil(s.lvl.Width / s.cellW)) }
func (s *Surface) Rows() int { return int(math.Ceil(s.lvl.Height / s.cellH)) }

func (s *Surface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

func (s *Surface) set(cx, cy int, r rune, st tcell.Style) {
	if cx < 0 || cy < 0 || cx >= s.Cols() || cy >= s.Rows() {
		return
	}
	s.screen.SetContent(cx, cy, r, nil, st)
}

// fill sets every cell whose centre lies inside the rect.
func (s *Surface) fill(x, y, w, h float64, r rune, st tcell.Style) {
	x0, y0 := s.cell(x, y)
	x1, y1 := s.cell(x+w, y+h)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			mx := (float64(cx) + 0.5) * s.cellW
			my := (float64(cy) + 0.5) * s.cellH
			if mx >= x && mx < x+w && my >= y && my < y+h {
				s.set(cx, cy, r, st)
			}
		}
	}
}

func fg(c color.Color) tcell.Style {
	r, g, b, _ := c.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

func (s *Surface) Clear(x, y, w, h float64) {
	x0, y0 := s.cell(x, y)
	x1, y1 := s.cell(x+w-1, y+h-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.set(cx, cy, ' ', tcell.StyleDefault)
		}
	}
}

func (s *Surface) DrawImage(ref game.ImageRef, x, y float64) {
	switch ref.Kind {
	case game.AssetBackground:
		st := fg(render.Wall)
		for _, r := range s.lvl.Obstacles {
			s.fill(r.X, r.Y, r.W, r.H, glyphWall, st)
		}
	case game.AssetChaser:
		// x, y is the sprite's top-left corner; mark its centre.
		radius := 8.0
		for _, c := range s.lvl.Chasers {
			if c.Color == ref.Color {
				radius = float64(c.Radius)
			}
		}
		cx, cy := s.cell(x+radius, y+radius)
		s.set(cx, cy, glyphChaser, fg(render.ChaserColor(ref.Color)))
	}
}

// FillWedge draws the player body; small wedges such as the eye have no
// cell-sized representation and are skipped.
func (s *Surface) FillWedge(w game.Wedge) {
	if w.Radius < s.cellW/2 && w.Radius < s.cellH/2 {
		return
	}
	glyph := glyphPlayer
	if math.Abs(w.End-w.Start) >= 2*math.Pi-0.02 || math.Abs(w.End-w.Start) <= 0.02 {
		glyph = glyphPlayerShut
	}
	c := w.Stroke
	if c == nil {
		c = w.Fill
	}
	cx, cy := s.cell(w.X, w.Y)
	s.set(cx, cy, glyph, fg(c))
}

// FillRect draws rects smaller than a cell as a dot and larger ones as
// a solid block.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w < s.cellW && h < s.cellH {
		cx, cy := s.cell(x+w/2, y+h/2)
		s.set(cx, cy, glyphCollectible, fg(c))
		return
	}
	r, g, b, _ := c.RGBA()
	st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
	s.fill(x, y, w, h, ' ', st)
}

// FillText writes text starting at the cell holding (x, y).
func (s *Surface) FillText(text string, x, y, size float64, c color.Color) {
	cx, cy := s.cell(x, y)
	st := fg(c)
	for i, r := range []rune(text) {
		s.set(cx+i, cy, r, st)
	}
}

// Present flushes the frame to the terminal.
func (s *Surface) Present() {
	s.screen.Show()
}
