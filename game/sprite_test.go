package game

import (
	"math"
	"testing"

	"github.com/plus3/chomp/level"
	"github.com/stretchr/testify/assert"
)

func TestMouthOpen(t *testing.T) {
	for frame, want := range map[uint64]bool{0: true, 1: true, 10: true, 11: false, 19: false, 20: true, 31: false} {
		assert.Equal(t, want, MouthOpen(frame, 20, 10), "frame %d", frame)
	}
}

func TestSpriteFor(t *testing.T) {
	assert.Equal(t, FacingRightSprite, SpriteFor(level.Vec{X: 1}, FacingLeftSprite))
	assert.Equal(t, FacingLeftSprite, SpriteFor(level.Vec{X: -1}, FacingRightSprite))
	assert.Equal(t, FacingLeftSprite, SpriteFor(level.Vec{Y: 1}, FacingLeftSprite))
	assert.Equal(t, FacingRightSprite, SpriteFor(level.Vec{Y: -1}, FacingRightSprite))
}

func TestPlayerWedges(t *testing.T) {
	tests := []struct {
		facing     Facing
		open       bool
		start, end float64
		eyeX, eyeY float64
	}{
		{FacingRight, true, math.Pi / 4, 7 * math.Pi / 4, 51, 45},
		{FacingRight, false, 0, 2 * math.Pi, 51, 45},
		{FacingLeft, true, 7 * math.Pi / 6, 3 * math.Pi / 4, 51, 45},
		{FacingLeft, false, math.Pi, math.Pi - 0.01, 51, 45},
		{FacingUp, true, 5 * math.Pi / 3, 4 * math.Pi / 3, 55, 48},
		{FacingUp, false, 3 * math.Pi / 2, 3*math.Pi/2 - 0.01, 55, 48},
		{FacingDown, true, 2 * math.Pi / 3, math.Pi / 3, 55, 48},
		{FacingDown, false, math.Pi / 2, math.Pi/2 - 0.01, 55, 48},
	}
	for _, tt := range tests {
		p := &Player{Pos: level.Point{X: 50, Y: 50}, Radius: 10, Facing: tt.facing}
		body, eye := PlayerWedges(p, tt.open)

		assert.Equal(t, tt.start, body.Start, "%s open=%v", tt.facing, tt.open)
		assert.Equal(t, tt.end, body.End, "%s open=%v", tt.facing, tt.open)
		assert.Equal(t, Yellow, body.Stroke)
		assert.Equal(t, Black, body.Fill)
		assert.Equal(t, tt.eyeX, eye.X)
		assert.Equal(t, tt.eyeY, eye.Y)
		assert.Equal(t, 1.0, eye.Radius)
	}
}

func TestBoxOverlapIsStrict(t *testing.T) {
	player := CircleBox(level.Point{X: 20, Y: 20}, 10)

	assert.False(t, player.Overlaps(RectBox(level.Rect{X: 30, Y: 0, W: 10, H: 40})), "touching edge")
	assert.True(t, player.Overlaps(RectBox(level.Rect{X: 29.5, Y: 0, W: 10, H: 40})))
	assert.False(t, player.Overlaps(SquareBox(level.Point{X: 5, Y: 20}, 5)), "touching left")
}

func TestCaptureTolerance(t *testing.T) {
	c := &Chaser{Pos: level.Vec{X: 100, Y: 100}, Radius: 8}
	box := c.CaptureBox(3)

	// Player box edge at 95 reaches into the raw chaser box but not the
	// shrunk one.
	near := CircleBox(level.Point{X: 85, Y: 100}, 10)
	assert.True(t, near.Overlaps(CircleBox(level.Point{X: 100, Y: 100}, 8)))
	assert.False(t, near.Overlaps(box))

	assert.True(t, CircleBox(level.Point{X: 86, Y: 100}, 10).Overlaps(box))
}
