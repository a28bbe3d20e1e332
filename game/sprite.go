package game

import "math"

type wedgeShape struct {
	start, end   float64
	eyeDX, eyeDY float64
}

// Indexed by Facing, then closed/open.
var playerShapes = [4][2]wedgeShape{
	FacingRight: {
		{start: 0, end: 2 * math.Pi, eyeDX: 1, eyeDY: -5},
		{start: math.Pi / 4, end: 7 * math.Pi / 4, eyeDX: 1, eyeDY: -5},
	},
	FacingLeft: {
		{start: math.Pi, end: math.Pi - 0.01, eyeDX: 1, eyeDY: -5},
		{start: 7 * math.Pi / 6, end: 3 * math.Pi / 4, eyeDX: 1, eyeDY: -5},
	},
	FacingUp: {
		{start: 3 * math.Pi / 2, end: 3*math.Pi/2 - 0.01, eyeDX: 5, eyeDY: -2},
		{start: 5 * math.Pi / 3, end: 4 * math.Pi / 3, eyeDX: 5, eyeDY: -2},
	},
	FacingDown: {
		{start: math.Pi / 2, end: math.Pi/2 - 0.01, eyeDX: 5, eyeDY: -2},
		{start: 2 * math.Pi / 3, end: math.Pi / 3, eyeDX: 5, eyeDY: -2},
	},
}

const (
	playerLineWidth = 2
	eyeRadius       = 1
)

// MouthOpen reports the mouth phase for an animation frame.
func MouthOpen(frame uint64, cycle, open int) bool {
	if cycle <= 0 {
		return true
	}
	return frame%uint64(cycle) <= uint64(open)
}

// PlayerWedges returns the body and eye of the player sprite.
func PlayerWedges(p *Player, open bool) (body, eye Wedge) {
	phase := 0
	if open {
		phase = 1
	}
	shape := playerShapes[p.Facing&3][phase]

	body = Wedge{
		X:         p.Pos.X,
		Y:         p.Pos.Y,
		Radius:    p.Radius,
		Start:     shape.start,
		End:       shape.end,
		Fill:      Black,
		Stroke:    Yellow,
		LineWidth: playerLineWidth,
	}
	eye = Wedge{
		X:      p.Pos.X + shape.eyeDX,
		Y:      p.Pos.Y + shape.eyeDY,
		Radius: eyeRadius,
		Start:  0,
		End:    2 * math.Pi,
		Fill:   Yellow,
	}
	return body, eye
}
