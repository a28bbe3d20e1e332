// Command chomp-tty plays a level in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/chomp/audio"
	"github.com/plus3/chomp/config"
	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
	"github.com/plus3/chomp/render/termsurface"
	"github.com/plus3/chomp/replay"
	"github.com/plus3/chomp/scores"
)

var steerKeys = map[tcell.Key]game.Direction{
	tcell.KeyLeft:  game.DirLeft,
	tcell.KeyRight: game.DirRight,
	tcell.KeyUp:    game.DirUp,
	tcell.KeyDown:  game.DirDown,
}

func main() {
	cfg, err := config.Load("chomp-tty", os.Args[1:], ".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Replay != "" {
		log.Fatalf("chomp-tty does not play replays; use chomp or chomp-soak -replay")
	}

	lvl, err := cfg.LoadLevel()
	if err != nil {
		log.Fatalf("Failed to load level %q: %v", cfg.Level, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	var db *scores.DB
	if cfg.DB != "" {
		db, err = scores.Open(cfg.DB)
		if err != nil {
			screen.Fini()
			log.Fatalf("Failed to open scoreboard: %v", err)
		}
		defer db.Close()
	}

	g := game.New(lvl)
	surface := termsurface.New(screen, lvl, termsurface.DefaultCellW, termsurface.DefaultCellH)

	sound := audio.NewPlayer()
	if !cfg.Mute {
		if err := sound.Init(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
		g.Subscribe(sound.Handle)
	}

	board := newScoreboard(db, cfg.Player, g)

	var rec *replay.Recorder
	if cfg.Record != "" {
		rec = replay.Attach(g)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commands := make(chan game.Command, 16)
	go pumpInput(screen, commands, cancel)

	err = g.Run(ctx, cfg.Interval(), surface, commands)

	sound.Close()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Game loop failed: %v", err)
	}
	if rec != nil {
		if err := replay.Save(cfg.Record, rec.Finish()); err != nil {
			log.Printf("Failed to save replay: %v", err)
		}
	}
	if err := board.print(os.Stdout, lvl); err != nil {
		log.Printf("Failed to read scoreboard: %v", err)
	}
}

// pumpInput turns terminal events into game commands until the player quits.
func pumpInput(screen tcell.Screen, commands chan<- game.Command, quit func()) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				return
			}
			if ev.Key() == tcell.KeyF5 {
				commands <- game.Restart()
				continue
			}
			if d, ok := steerKeys[ev.Key()]; ok {
				commands <- game.Steer(d)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// scoreboard records each run as it ends. Its callbacks run on the loop
// goroutine, so it reads the session directly.
type scoreboard struct {
	db       *scores.DB
	player   string
	g        *game.Game
	runStart uint64
}

func newScoreboard(db *scores.DB, player string, g *game.Game) *scoreboard {
	b := &scoreboard{db: db, player: player, g: g}
	g.ObserveCommands(func(tick uint64, cmd game.Command) {
		if cmd.Kind == game.CommandReset {
			b.runStart = tick
		}
	})
	g.Subscribe(func(ev game.Event) {
		if ev.Kind == game.EventCaptured || ev.Kind == game.EventWon {
			b.record()
		}
	})
	return b
}

func (b *scoreboard) record() {
	if b.db == nil {
		return
	}
	e := scores.FromSession(b.player, b.g.Session(), b.g.Tick()-b.runStart)
	if _, err := b.db.Record(e); err != nil {
		log.Printf("Failed to record score: %v", err)
	}
}

func (b *scoreboard) print(w io.Writer, lvl *level.Level) error {
	if b.db == nil {
		return nil
	}
	top, err := b.db.Top(lvl.Name, 5)
	if err != nil {
		return err
	}
	counts, err := b.db.Count(lvl.Name)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Top runs on %s:\n", lvl.Name)
	for i, e := range top {
		fmt.Fprintf(w, "%d. %-12s %3d/%-3d %-9s %d frames\n", i+1, e.Player, e.Score, e.Total, e.Outcome, e.Frames)
	}
	fmt.Fprintf(w, "Runs: %d won, %d captured\n", counts[game.Won.String()], counts[game.Captured.String()])
	return nil
}
