package game

import "strconv"

// Text placement of the status screens, in canvas pixels.
const (
	scoreX, scoreY       = 211, 250
	victoryX, victoryY   = 215, 250
	bannerSize           = 16
	panelX, panelY       = 190, 210
	panelW, panelH       = 120, 70
	gameOverX, gameOverY = 207, 240
	restartX, restartY   = 202, 260
	panelTextSize        = 10
)

// BackdropSystem clears the canvas and draws the background every frame.
type BackdropSystem struct{}

func (s *BackdropSystem) Execute(frame *Frame) {
	lvl := frame.Session.Level
	frame.Surface.Clear(0, 0, lvl.Width, lvl.Height)
	frame.Surface.DrawImage(ImageRef{Kind: AssetBackground}, 0, 0)
}

// SceneSystem draws the score, the remaining collectibles and the chasers.
type SceneSystem struct{}

func (s *SceneSystem) Execute(frame *Frame) {
	if frame.State != Ongoing {
		return
	}
	sess := frame.Session
	surface := frame.Surface

	surface.FillText("Score: "+strconv.Itoa(sess.Score), scoreX, scoreY, bannerSize, White)

	size := sess.Level.CollectibleSize
	for _, c := range sess.Collectibles {
		if c.Consumed {
			continue
		}
		surface.FillRect(c.X, c.Y, size, size, CollectibleTan)
	}

	for i := range sess.Chasers {
		c := &sess.Chasers[i]
		surface.DrawImage(
			ImageRef{Kind: AssetChaser, Color: c.Color, Variant: c.Sprite},
			float64(c.Pos.X-c.Radius), float64(c.Pos.Y-c.Radius),
		)
	}
}

// ChaserSystem advances every chaser along its rail in level order and ticks
// the animation counter.
type ChaserSystem struct {
	// Waypoints counts rail triggers that fired.
	Waypoints int64
}

func (s *ChaserSystem) Execute(frame *Frame) {
	if frame.State != Ongoing {
		return
	}
	for i := range frame.Session.Chasers {
		if frame.Session.Chasers[i].Advance() {
			s.Waypoints++
		}
	}
	frame.Session.Frame++
}

// PlayerSpriteSystem draws the player at its pre-move position.
type PlayerSpriteSystem struct{}

func (s *PlayerSpriteSystem) Execute(frame *Frame) {
	if frame.State != Ongoing {
		return
	}
	sess := frame.Session
	open := MouthOpen(sess.Frame, sess.Level.MouthCycle, sess.Level.MouthOpen)
	body, eye := PlayerWedges(&sess.Player, open)
	frame.Surface.FillWedge(body)
	frame.Surface.FillWedge(eye)
}

// PlayerSystem moves the player and resolves its collisions: obstacles,
// collectibles, teleport zones and chasers, in that order.
type PlayerSystem struct{}

func (s *PlayerSystem) Execute(frame *Frame) {
	if frame.State != Ongoing {
		return
	}
	sess := frame.Session
	lvl := sess.Level
	p := &sess.Player

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y

	for _, r := range lvl.Obstacles {
		if p.Box().Overlaps(RectBox(r)) {
			p.revert(lvl.RevertFactor)
		}
	}

	for i := range sess.Collectibles {
		c := &sess.Collectibles[i]
		if c.Consumed || !p.Box().Overlaps(SquareBox(c.Point, lvl.CollectibleSize)) {
			continue
		}
		c.Consumed = true
		sess.Score++
		frame.Events.Emit(Event{Kind: EventCollected, Frame: frame.Number, Index: i})
	}

	for _, tp := range lvl.Teleports {
		if !tp.Crossed(p.Pos, p.Radius) {
			continue
		}
		if tp.NextLevel {
			p.revert(lvl.RevertFactor)
			frame.Events.Emit(Event{Kind: EventLevelComplete, Frame: frame.Number, Zone: tp.Name})
			continue
		}
		p.Pos = tp.Target
		frame.Events.Emit(Event{Kind: EventTeleported, Frame: frame.Number, Zone: tp.Name})
	}

	for i := range sess.Chasers {
		c := &sess.Chasers[i]
		if p.Box().Overlaps(c.CaptureBox(lvl.CaptureTolerance)) {
			sess.capture()
			frame.Events.Emit(Event{Kind: EventCaptured, Frame: frame.Number, Chaser: c.Name})
			return
		}
	}

	sess.settle(frame.Number, frame.Events)
}

// OverlaySystem draws the end screens.
type OverlaySystem struct{}

func (s *OverlaySystem) Execute(frame *Frame) {
	surface := frame.Surface
	switch frame.State {
	case Won:
		surface.FillText("Victory!", victoryX, victoryY, bannerSize, White)
	case Captured:
		surface.FillRect(panelX, panelY, panelW, panelH, Black)
		surface.FillText("GAME OVER!", gameOverX, gameOverY, panelTextSize, White)
		surface.FillText("F5 TO RESTART.", restartX, restartY, panelTextSize, White)
	}
}

// DefaultSystems returns the frame pipeline in execution order.
func DefaultSystems() []System {
	return []System{
		&BackdropSystem{},
		&SceneSystem{},
		&ChaserSystem{},
		&PlayerSpriteSystem{},
		&PlayerSystem{},
		&OverlaySystem{},
	}
}
