package game_test

import (
	"fmt"

	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
)

// ExampleGame shows the basic host loop: apply input, advance one frame,
// read the session.
func ExampleGame() {
	g := game.New(level.Classic())

	g.Steer(game.DirRight)
	for range 3 {
		g.AdvanceFrame(game.Discard)
	}

	p := g.Session().Player
	fmt.Printf("player at (%.0f, %.0f) facing %s\n", p.Pos.X, p.Pos.Y, p.Facing)
	fmt.Println(g.State())
	// Output:
	// player at (36, 30) facing right
	// ongoing
}

// ExampleGame_Subscribe demonstrates receiving events after each frame.
func ExampleGame_Subscribe() {
	g := game.New(level.Classic())
	g.Subscribe(func(ev game.Event) {
		if ev.Kind == game.EventCaptured {
			fmt.Printf("caught by %s on frame %d\n", ev.Chaser, ev.Frame)
		}
	})

	g.Session().Player.Pos.X = 455
	g.AdvanceFrame(nil)
	// Output:
	// caught by red on frame 0
}

// ExampleRecorder shows how the end screen is drawn.
func ExampleRecorder() {
	g := game.New(level.Classic())
	g.Session().Player.Pos.X = 455
	g.AdvanceFrame(nil)

	rec := &game.Recorder{}
	g.AdvanceFrame(rec)
	fmt.Println(rec.Text())
	// Output:
	// GAME OVER!
	// F5 TO RESTART.
}
