package game

import (
	"image/color"
	"strings"

	"github.com/plus3/chomp/level"
)

// Surface is the 2D drawing target a frame renders into. Coordinates are
// canvas pixels; implementations scale as they see fit.
type Surface interface {
	Clear(x, y, w, h float64)
	DrawImage(img ImageRef, x, y float64)
	FillWedge(w Wedge)
	FillRect(x, y, w, h float64, c color.Color)
	FillText(text string, x, y, size float64, c color.Color)
}

// Presenter is implemented by surfaces that buffer draw calls and need an
// explicit flip after each frame.
type Presenter interface {
	Present()
}

// AssetKind names an opaque image a host must supply.
type AssetKind uint8

const (
	AssetBackground AssetKind = iota
	AssetChaser
)

// SpriteVariant selects the horizontal orientation of a chaser image.
type SpriteVariant uint8

const (
	FacingRightSprite SpriteVariant = iota
	FacingLeftSprite
)

func (v SpriteVariant) String() string {
	if v == FacingLeftSprite {
		return "left"
	}
	return "right"
}

// SpriteFor picks the variant for a chaser moving with vel. A chaser moving
// vertically keeps whatever it showed before.
func SpriteFor(vel level.Vec, prev SpriteVariant) SpriteVariant {
	switch {
	case vel.X > 0:
		return FacingRightSprite
	case vel.X < 0:
		return FacingLeftSprite
	}
	return prev
}

// ImageRef identifies an image. Color is set for chaser images.
type ImageRef struct {
	Kind    AssetKind
	Color   string
	Variant SpriteVariant
}

// Wedge is a filled circular sector with an optional outline. The arc runs
// clockwise (y down) from Start to End radians and is closed through the
// centre.
type Wedge struct {
	X, Y      float64
	Radius    float64
	Start     float64
	End       float64
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
}

var (
	White          = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black          = color.RGBA{A: 0xff}
	Yellow         = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	CollectibleTan = color.RGBA{R: 250, G: 250, B: 210, A: 0xff}
)

// DrawOp identifies a recorded call.
type DrawOp uint8

const (
	OpClear DrawOp = iota
	OpImage
	OpWedge
	OpRect
	OpText
)

// DrawCall is one recorded Surface call. Only the fields used by Op are set.
type DrawCall struct {
	Op         DrawOp
	X, Y, W, H float64
	Image      ImageRef
	Wedge      Wedge
	Text       string
	Size       float64
	Color      color.Color
}

// Recorder is a Surface that keeps every call it receives.
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) Clear(x, y, w, h float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpClear, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawImage(img ImageRef, x, y float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpImage, Image: img, X: x, Y: y})
}

func (r *Recorder) FillWedge(w Wedge) {
	r.Calls = append(r.Calls, DrawCall{Op: OpWedge, Wedge: w, X: w.X, Y: w.Y})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillText(text string, x, y, size float64, c color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpText, Text: text, X: x, Y: y, Size: size, Color: c})
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Text joins the recorded text calls with newlines.
func (r *Recorder) Text() string {
	var parts []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Discard is a Surface that drops everything.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear(x, y, w, h float64)                                {}
func (discard) DrawImage(img ImageRef, x, y float64)                    {}
func (discard) FillWedge(w Wedge)                                       {}
func (discard) FillRect(x, y, w, h float64, c color.Color)              {}
func (discard) FillText(text string, x, y, size float64, c color.Color) {}
