// Package ebitensurface draws game frames onto an ebiten image.
package ebitensurface

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
	"github.com/plus3/chomp/render"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

type spriteKey struct {
	color   string
	variant game.SpriteVariant
}

// Surface renders into an offscreen canvas sized to the level times scale.
// Frames are advanced in Update; Draw copies the canvas to the screen.
type Surface struct {
	lvl    *level.Level
	scale  float64
	canvas *ebiten.Image

	background *ebiten.Image
	sprites    map[spriteKey]*ebiten.Image
	white      *ebiten.Image
	label      *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates a surface for lvl.
func New(lvl *level.Level, scale float64) *Surface {
	w, h := int(math.Ceil(lvl.Width*scale)), int(math.Ceil(lvl.Height*scale))

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	s := &Surface{
		lvl:     lvl,
		scale:   scale,
		canvas:  ebiten.NewImage(w, h),
		sprites: make(map[spriteKey]*ebiten.Image),
		white:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
	s.background = s.renderBackground(w, h)
	return s
}

// Size returns the canvas size in device pixels.
func (s *Surface) Size() (int, int) {
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// DrawTo copies the canvas onto screen.
func (s *Surface) DrawTo(screen *ebiten.Image) {
	screen.DrawImage(s.canvas, nil)
}

func (s *Surface) renderBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(render.Floor)
	k := float32(s.scale)
	for _, r := range s.lvl.Obstacles {
		vector.StrokeRect(img, float32(r.X)*k+1, float32(r.Y)*k+1, float32(r.W)*k-2, float32(r.H)*k-2, 2*k, render.Wall, false)
	}
	return img
}

func (s *Surface) sprite(ref game.ImageRef) *ebiten.Image {
	key := spriteKey{color: ref.Color, variant: ref.Variant}
	if img, ok := s.sprites[key]; ok {
		return img
	}

	// Sprites are drawn at canvas scale, sized for the largest chaser.
	r := 8.0
	for _, c := range s.lvl.Chasers {
		if c.Color == ref.Color {
			r = float64(c.Radius)
		}
	}
	k := float32(s.scale)
	size := float32(2 * r)
	img := ebiten.NewImage(int(math.Ceil(float64(size*k))), int(math.Ceil(float64(size*k))))

	body := render.ChaserColor(ref.Color)
	half := size / 2
	vector.DrawFilledCircle(img, half*k, half*k, half*k, body, true)
	vector.DrawFilledRect(img, 0, half*k, size*k, half*k, body, false)

	look := float32(1)
	if ref.Variant == game.FacingLeftSprite {
		look = -1
	}
	for _, ex := range []float32{half - size/4, half + size/4} {
		vector.DrawFilledCircle(img, ex*k, (half-1)*k, size/8*k, color.White, true)
		vector.DrawFilledCircle(img, (ex+look*size/16)*k, (half-1)*k, size/16*k, render.Wall, true)
	}

	s.sprites[key] = img
	return img
}

func (s *Surface) Clear(x, y, w, h float64) {
	k := s.scale
	rect := image.Rect(int(x*k), int(y*k), int(math.Ceil((x+w)*k)), int(math.Ceil((y+h)*k)))
	s.canvas.SubImage(rect).(*ebiten.Image).Clear()
}

func (s *Surface) DrawImage(ref game.ImageRef, x, y float64) {
	var img *ebiten.Image
	switch ref.Kind {
	case game.AssetBackground:
		img = s.background
	case game.AssetChaser:
		img = s.sprite(ref)
	default:
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x*s.scale, y*s.scale)
	s.canvas.DrawImage(img, op)
}

func (s *Surface) FillWedge(w game.Wedge) {
	k := float32(s.scale)
	cx, cy := float32(w.X)*k, float32(w.Y)*k

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, float32(w.Radius)*k, float32(w.Start), float32(w.End), vector.Clockwise)
	path.Close()

	if w.Fill != nil {
		s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
		s.drawTriangles(w.Fill)
	}
	if w.Stroke != nil && w.LineWidth > 0 {
		op := &vector.StrokeOptions{Width: float32(w.LineWidth) * k, LineJoin: vector.LineJoinRound}
		s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
		s.drawTriangles(w.Stroke)
	}
}

func (s *Surface) drawTriangles(c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 0xffff
		s.vertices[i].ColorG = float32(g) / 0xffff
		s.vertices[i].ColorB = float32(b) / 0xffff
		s.vertices[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.canvas.DrawTriangles(s.vertices, s.indices, s.white, op)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	k := float32(s.scale)
	vector.DrawFilledRect(s.canvas, float32(x)*k, float32(y)*k, float32(w)*k, float32(h)*k, c, false)
}

// FillText positions text by its baseline, as canvas text is. The debug
// font is scaled to approximate size.
func (s *Surface) FillText(text string, x, y, size float64, c color.Color) {
	w, h := len(text)*glyphW, glyphH
	if s.label == nil || s.label.Bounds().Dx() < w {
		s.label = ebiten.NewImage(max(w, 128), h)
	}
	s.label.Clear()
	ebitenutil.DebugPrintAt(s.label, text, 0, 0)

	k := size / 12 * s.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x*s.scale, y*s.scale-float64(h-4)*k)
	op.ColorScale.ScaleWithColor(c)
	s.canvas.DrawImage(s.label.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image), op)
}
