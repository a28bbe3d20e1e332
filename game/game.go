// Package game implements the fixed-step loop of a maze chase: one steerable
// player, chasers patrolling fixed rails, obstacles, collectibles and
// teleport zones.
//
// Each call to AdvanceFrame runs exactly one frame. A frame draws into a
// Surface and then mutates the session; the order of those steps is part of
// the game's observable behavior. Game is not safe for concurrent use: hosts
// feed input through Apply from the same goroutine that advances frames, or
// hand both to Run.
package game

import (
	"context"
	"time"

	"github.com/plus3/chomp/level"
)

// Game owns a session and the scheduler that advances it.
type Game struct {
	session   *Session
	scheduler *Scheduler
	chasers   *ChaserSystem
	observers []func(tick uint64, cmd Command)
}

// New creates a game for lvl with the default frame pipeline.
func New(lvl *level.Level) *Game {
	g := &Game{
		session:   NewSession(lvl),
		scheduler: NewScheduler(),
	}
	for _, sys := range DefaultSystems() {
		if cs, ok := sys.(*ChaserSystem); ok {
			g.chasers = cs
		}
		g.scheduler.Register(sys)
	}
	return g
}

// Session exposes the live session. Callers must not retain it across Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Level returns the level being played.
func (g *Game) Level() *level.Level {
	return g.session.Level
}

// State returns the current session state.
func (g *Game) State() State {
	return g.session.State
}

// Tick returns the number of frames advanced since New.
func (g *Game) Tick() uint64 {
	return g.scheduler.Frames()
}

// AdvanceFrame runs one frame, drawing into s, and returns the events the
// frame produced.
func (g *Game) AdvanceFrame(s Surface) []Event {
	if s == nil {
		s = Discard
	}
	return g.scheduler.Once(g.session, s)
}

// Apply applies a host command before the next frame.
func (g *Game) Apply(cmd Command) {
	for _, fn := range g.observers {
		fn(g.Tick(), cmd)
	}
	switch cmd.Kind {
	case CommandSteer:
		g.session.steer(cmd.Dir)
	case CommandReset:
		g.session.Reset()
	}
}

// Steer is shorthand for Apply(Steer(d)).
func (g *Game) Steer(d Direction) {
	g.Apply(Steer(d))
}

// Reset is shorthand for Apply(Restart()).
func (g *Game) Reset() {
	g.Apply(Restart())
}

// Subscribe registers fn to receive every event after its frame completes.
func (g *Game) Subscribe(fn func(Event)) {
	g.scheduler.Subscribe(fn)
}

// ObserveCommands registers fn to see every applied command together with
// the tick it applies before.
func (g *Game) ObserveCommands(fn func(tick uint64, cmd Command)) {
	g.observers = append(g.observers, fn)
}

// RailTriggers returns how many rail waypoints have fired since New. Reset
// does not rewind it.
func (g *Game) RailTriggers() int64 {
	if g.chasers == nil {
		return 0
	}
	return g.chasers.Waypoints
}

// Stats returns per-system execution statistics.
func (g *Game) Stats() *SchedulerStats {
	return g.scheduler.GetStats()
}

// Run advances a frame every interval until ctx is cancelled. Commands are
// applied between frames. If surface implements Presenter it is presented
// after each frame.
func (g *Game) Run(ctx context.Context, interval time.Duration, surface Surface, commands <-chan Command) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	presenter, _ := surface.(Presenter)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			g.Apply(cmd)
		case <-ticker.C:
			g.AdvanceFrame(surface)
			if presenter != nil {
				presenter.Present()
			}
		}
	}
}
