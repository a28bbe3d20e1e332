package game

import (
	"fmt"
	"slices"

	"github.com/plus3/chomp/level"
)

// State is the outcome of a session. It only ever moves away from Ongoing.
type State uint8

const (
	Ongoing State = iota
	Captured
	Won
)

func (s State) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Captured:
		return "captured"
	case Won:
		return "won"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Terminal reports whether s ends simulation updates.
func (s State) Terminal() bool {
	return s != Ongoing
}

// Player is the steerable entity.
type Player struct {
	Pos    level.Point
	Vel    level.Point
	Radius float64
	Step   float64
	Facing Facing
}

// Box returns the player's bounding box.
func (p *Player) Box() Box {
	return CircleBox(p.Pos, p.Radius)
}

// revert backs the player out along its velocity and stops it dead.
func (p *Player) revert(factor float64) {
	p.Pos.X -= p.Vel.X * factor
	p.Pos.Y -= p.Vel.Y * factor
	p.Vel = level.Point{}
}

// Chaser is a non-player entity running on a fixed rail.
type Chaser struct {
	Name   string
	Color  string
	Pos    level.Vec
	Vel    level.Vec
	Radius int
	Speed  int
	Sprite SpriteVariant

	rail *level.RailTable
}

// Advance moves the chaser one frame along its rail and reports whether a
// waypoint fired. The sprite follows the horizontal direction it moved in.
func (c *Chaser) Advance() bool {
	c.Sprite = SpriteFor(c.Vel, c.Sprite)
	pos, vel, fired := level.RailStep(c.rail, c.Pos, c.Vel, c.Speed)
	c.Pos, c.Vel = pos, vel
	return fired
}

// CaptureBox is the chaser's bounding box shrunk by tolerance on every side.
func (c *Chaser) CaptureBox(tolerance float64) Box {
	r := float64(c.Radius)
	x, y := float64(c.Pos.X), float64(c.Pos.Y)
	return Box{
		MinX: x - r + tolerance,
		MinY: y - r + tolerance,
		MaxX: x + r - tolerance,
		MaxY: y + r - tolerance,
	}
}

// Collectible is a point marker; consumed ones are no longer drawn or tested.
type Collectible struct {
	level.Point
	Consumed bool
}

// Session is the complete mutable state of one play-through.
type Session struct {
	Level        *level.Level
	Player       Player
	Chasers      []Chaser
	Collectibles []Collectible
	Score        int
	// Frame drives the mouth animation; it only advances on Ongoing frames.
	Frame uint64
	State State
}

// NewSession builds the initial state of lvl.
func NewSession(lvl *level.Level) *Session {
	if lvl == nil {
		panic("game: nil level")
	}
	s := &Session{Level: lvl}
	s.Reset()
	return s
}

// Reset puts the session back into the level's initial state.
func (s *Session) Reset() {
	lvl := s.Level
	s.Player = Player{
		Pos:    lvl.Player.Start,
		Radius: lvl.Player.Radius,
		Step:   lvl.Player.Step,
		Facing: ParseFacing(lvl.Player.Facing),
	}

	s.Chasers = make([]Chaser, len(lvl.Chasers))
	for i, spec := range lvl.Chasers {
		s.Chasers[i] = Chaser{
			Name:   spec.Name,
			Color:  spec.Color,
			Pos:    spec.Start,
			Vel:    spec.Velocity,
			Radius: spec.Radius,
			Speed:  spec.Speed,
			Sprite: FacingRightSprite,
			rail:   level.CompileRail(spec.Rail),
		}
	}

	s.Collectibles = make([]Collectible, len(lvl.Collectibles))
	for i, p := range lvl.Collectibles {
		s.Collectibles[i] = Collectible{Point: p}
	}

	s.Score = 0
	s.Frame = 0
	s.State = Ongoing
}

// Total returns the number of collectibles in the level.
func (s *Session) Total() int {
	return len(s.Collectibles)
}

// Remaining returns the number of unconsumed collectibles.
func (s *Session) Remaining() int {
	n := 0
	for _, c := range s.Collectibles {
		if !c.Consumed {
			n++
		}
	}
	return n
}

// steer sets the player's velocity and facing. Terminal sessions ignore it so
// that frozen entities stay frozen.
func (s *Session) steer(d Direction) {
	if s.State.Terminal() || d == DirNone {
		return
	}
	unit := d.Unit()
	s.Player.Vel = level.Point{X: unit.X * s.Player.Step, Y: unit.Y * s.Player.Step}
	s.Player.Facing = d.Facing()
}

func (s *Session) capture() {
	s.State = Captured
	s.Player.Vel = level.Point{}
	for i := range s.Chasers {
		s.Chasers[i].Vel = level.Vec{}
	}
}

// settle moves an Ongoing session with nothing left to collect to Won.
func (s *Session) settle(frame uint64, events *Events) {
	if s.State == Ongoing && s.Score >= s.Total() {
		s.State = Won
		events.Emit(Event{Kind: EventWon, Frame: frame})
	}
}

// ChaserState is the observable part of a chaser.
type ChaserState struct {
	Name   string
	Pos    level.Vec
	Vel    level.Vec
	Sprite SpriteVariant
}

// Snapshot is a copy of the observable session state.
type Snapshot struct {
	Player   Player
	Chasers  []ChaserState
	Score    int
	Consumed int
	Frame    uint64
	State    State
}

// Snapshot copies the observable state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Player:   s.Player,
		Chasers:  make([]ChaserState, len(s.Chasers)),
		Score:    s.Score,
		Consumed: s.Total() - s.Remaining(),
		Frame:    s.Frame,
		State:    s.State,
	}
	for i, c := range s.Chasers {
		snap.Chasers[i] = ChaserState{Name: c.Name, Pos: c.Pos, Vel: c.Vel, Sprite: c.Sprite}
	}
	return snap
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	return a.Player == b.Player &&
		slices.Equal(a.Chasers, b.Chasers) &&
		a.Score == b.Score &&
		a.Consumed == b.Consumed &&
		a.Frame == b.Frame &&
		a.State == b.State
}
